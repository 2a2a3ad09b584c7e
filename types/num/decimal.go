package num

import (
	"github.com/shopspring/decimal"
)

type Decimal = decimal.Decimal

var dzero = decimal.Zero

// DecimalZero returns a decimal set to zero.
func DecimalZero() Decimal {
	return dzero
}

// DecimalFromString parses a decimal from its string representation.
func DecimalFromString(s string) (Decimal, error) {
	return decimal.NewFromString(s)
}

// MustDecimalFromString parses a decimal from a string known to be
// valid, such as a static rate, and panics otherwise.
func MustDecimalFromString(s string) Decimal {
	d, err := DecimalFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFromInt64 returns a decimal with the value of i.
func DecimalFromInt64(i int64) Decimal {
	return decimal.NewFromInt(i)
}

// DecimalFromUint returns a decimal with the value of u.
func DecimalFromUint(u *Uint) Decimal {
	return decimal.NewFromBigInt(u.BigInt(), 0)
}
