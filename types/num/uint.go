package num

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint is a wrapper for a 256-bit unsigned integer, the numeric type
// used for every vote weight and supply amount in the ledger.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint with the value of the
// uint64 passed as a parameter.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// UintFromBig constructs a new Uint from a big.Int,
// the returned bool is true if an overflow happened.
func UintFromBig(b *big.Int) (*Uint, bool) {
	u, overflow := uint256.FromBig(b)
	if overflow || b.Sign() < 0 {
		return UintZero(), true
	}
	return &Uint{*u}, false
}

// UintFromString creates a new Uint from a string
// interpreted in the given base. A big.Int is used to
// read the string so all its parsing rules apply.
// The returned bool is true on a parse error or overflow.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString is a convenience for static amounts known to
// be valid, it panics on a bad input.
func MustUintFromString(str string) *Uint {
	u, overflow := UintFromString(str, 10)
	if overflow {
		panic(fmt.Sprintf("invalid uint string: %s", str))
	}
	return u
}

// Sum returns a new Uint equal to the sum of all the given values.
func Sum(vals ...*Uint) *Uint {
	return UintZero().AddSum(vals...)
}

// Min returns the smallest of the 2 numbers.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a
	}
	return b
}

// Max returns the largest of the 2 numbers.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a
	}
	return b
}

// Set sets z to the value of oth, returning z.
func (z *Uint) Set(oth *Uint) *Uint {
	z.u.Set(&oth.u)
	return z
}

// Uint64 returns the low 64 bits of z.
func (z Uint) Uint64() uint64 {
	return z.u.Uint64()
}

// BigInt returns the value of z as a new big.Int.
func (z Uint) BigInt() *big.Int {
	return z.u.ToBig()
}

// Add sets z to x + y and returns z.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds all the given values to z in place,
// so x.AddSum(y, z) is equivalent to x + y + z.
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// Sub sets z to x - y and returns z.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// Mul sets z to x * y and returns z.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// Div sets z to x / y (integer division, flooring) and returns z.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

// LT reports whether z < oth.
func (z Uint) LT(oth *Uint) bool {
	return z.u.Lt(&oth.u)
}

// LTE reports whether z <= oth.
func (z Uint) LTE(oth *Uint) bool {
	return z.u.Lt(&oth.u) || z.u.Eq(&oth.u)
}

// EQ reports whether z == oth.
func (z Uint) EQ(oth *Uint) bool {
	return z.u.Eq(&oth.u)
}

// EQUint64 reports whether z == oth.
func (z Uint) EQUint64(oth uint64) bool {
	return z.u.Eq(uint256.NewInt(oth))
}

// NEQ reports whether z != oth.
func (z Uint) NEQ(oth *Uint) bool {
	return !z.u.Eq(&oth.u)
}

// GT reports whether z > oth.
func (z Uint) GT(oth *Uint) bool {
	return z.u.Gt(&oth.u)
}

// GTUint64 reports whether z > oth.
func (z Uint) GTUint64(oth uint64) bool {
	return z.u.GtUint64(oth)
}

// GTE reports whether z >= oth.
func (z Uint) GTE(oth *Uint) bool {
	return z.u.Gt(&oth.u) || z.u.Eq(&oth.u)
}

// IsZero reports whether z == 0.
func (z Uint) IsZero() bool {
	return z.u.IsZero()
}

// Copy sets z to the value of x and returns z.
func (z *Uint) Copy(x *Uint) *Uint {
	z.u = x.u
	return z
}

// Clone returns a copy of z.
func (z Uint) Clone() *Uint {
	return &Uint{z.u}
}

// Hex returns the hexadecimal representation of z.
func (z Uint) Hex() string {
	return z.u.Hex()
}

// String returns the decimal representation of z.
func (z Uint) String() string {
	return z.u.ToBig().String()
}

// Bytes returns the value of z as a 32 byte big endian array.
func (z Uint) Bytes() [32]byte {
	return z.u.Bytes32()
}

// Format implements fmt.Formatter.
func (z Uint) Format(s fmt.State, ch rune) {
	z.u.Format(s, ch)
}

// MarshalText implements encoding.TextMarshaler, amounts travel
// as decimal strings on every serialized surface.
func (z Uint) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Uint) UnmarshalText(text []byte) error {
	u, overflow := UintFromString(string(text), 10)
	if overflow {
		return fmt.Errorf("invalid uint amount %q", string(text))
	}
	z.u = u.u
	return nil
}
