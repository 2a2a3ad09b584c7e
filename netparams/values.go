package netparams

import (
	"errors"
	"fmt"
	"strconv"

	"code.witanprotocol.io/witan/types/num"
)

type baseValue struct{}

func (b *baseValue) ToUint() (uint64, error) {
	return 0, errors.New("not a uint value")
}

func (b *baseValue) ToBigUint() (*num.Uint, error) {
	return nil, errors.New("not a big uint value")
}

func (b *baseValue) ToString() (string, error) {
	return "", errors.New("not a string value")
}

type UintRule func(uint64) error

type Uint struct {
	*baseValue
	value   uint64
	rawval  string
	rules   []UintRule
	mutable bool
}

func NewUint(rules ...UintRule) *Uint {
	return &Uint{
		baseValue: &baseValue{},
		rules:     rules,
	}
}

func (u *Uint) ToUint() (uint64, error) {
	return u.value, nil
}

func (u *Uint) Validate(value string) error {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return err
	}
	if !u.mutable {
		return errors.New("value is not mutable")
	}
	for _, fn := range u.rules {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uint) Update(value string) error {
	if err := u.Validate(value); err != nil {
		return err
	}
	u.value, _ = strconv.ParseUint(value, 10, 64)
	u.rawval = value
	return nil
}

func (u *Uint) Mutable(b bool) *Uint {
	u.mutable = b
	return u
}

func (u *Uint) MustUpdate(value string) *Uint {
	if err := u.Update(value); err != nil {
		panic(err)
	}
	return u
}

func (u *Uint) String() string {
	return u.rawval
}

func UintGTE(min uint64) func(uint64) error {
	return func(val uint64) error {
		if val >= min {
			return nil
		}
		return fmt.Errorf("expect >= %d got %d", min, val)
	}
}

func UintLTE(max uint64) func(uint64) error {
	return func(val uint64) error {
		if val <= max {
			return nil
		}
		return fmt.Errorf("expect <= %d got %d", max, val)
	}
}

type BigUintRule func(*num.Uint) error

type BigUint struct {
	*baseValue
	value   *num.Uint
	rawval  string
	rules   []BigUintRule
	mutable bool
}

func NewBigUint(rules ...BigUintRule) *BigUint {
	return &BigUint{
		baseValue: &baseValue{},
		value:     num.UintZero(),
		rules:     rules,
	}
}

// ToBigUint returns a copy, the stored value stays immutable.
func (b *BigUint) ToBigUint() (*num.Uint, error) {
	return b.value.Clone(), nil
}

func (b *BigUint) Validate(value string) error {
	v, overflow := num.UintFromString(value, 10)
	if overflow {
		return fmt.Errorf("invalid uint %q", value)
	}
	if !b.mutable {
		return errors.New("value is not mutable")
	}
	for _, fn := range b.rules {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

func (b *BigUint) Update(value string) error {
	if err := b.Validate(value); err != nil {
		return err
	}
	b.value, _ = num.UintFromString(value, 10)
	b.rawval = value
	return nil
}

func (b *BigUint) Mutable(m bool) *BigUint {
	b.mutable = m
	return b
}

func (b *BigUint) MustUpdate(value string) *BigUint {
	if err := b.Update(value); err != nil {
		panic(err)
	}
	return b
}

func (b *BigUint) String() string {
	return b.rawval
}

func BigUintGTZero() func(*num.Uint) error {
	return func(val *num.Uint) error {
		if !val.IsZero() {
			return nil
		}
		return errors.New("expect > 0 got 0")
	}
}

type StringRule func(string) error

type String struct {
	*baseValue
	value   string
	rules   []StringRule
	mutable bool
}

func NewString(rules ...StringRule) *String {
	return &String{
		baseValue: &baseValue{},
		rules:     rules,
	}
}

func (s *String) ToString() (string, error) {
	return s.value, nil
}

func (s *String) Validate(value string) error {
	if !s.mutable {
		return errors.New("value is not mutable")
	}
	for _, fn := range s.rules {
		if err := fn(value); err != nil {
			return err
		}
	}
	return nil
}

func (s *String) Update(value string) error {
	if err := s.Validate(value); err != nil {
		return err
	}
	s.value = value
	return nil
}

func (s *String) Mutable(m bool) *String {
	s.mutable = m
	return s
}

func (s *String) MustUpdate(value string) *String {
	if err := s.Update(value); err != nil {
		panic(err)
	}
	return s
}

func (s *String) String() string {
	return s.value
}

func StringNonEmpty() func(string) error {
	return func(val string) error {
		if len(val) > 0 {
			return nil
		}
		return errors.New("expect non empty string")
	}
}
