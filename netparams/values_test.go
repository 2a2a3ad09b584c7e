package netparams_test

import (
	"testing"

	"code.witanprotocol.io/witan/netparams"
	"code.witanprotocol.io/witan/types/num"

	"github.com/stretchr/testify/assert"
)

func TestUintValues(t *testing.T) {
	// happy case, all good
	u := netparams.NewUint(netparams.UintGTE(1), netparams.UintLTE(100)).Mutable(true).MustUpdate("50")
	assert.NotNil(t, u)
	err := u.Validate("66")
	assert.NoError(t, err)

	err = u.Update("66")
	assert.NoError(t, err)

	v, err := u.ToUint()
	assert.NoError(t, err)
	assert.Equal(t, uint64(66), v)
	assert.Equal(t, "66", u.String())

	// wrong representation kept out
	_, err = u.ToBigUint()
	assert.EqualError(t, err, "not a big uint value")
	_, err = u.ToString()
	assert.EqualError(t, err, "not a string value")

	// errors cases now

	// out of bounds
	err = u.Update("0")
	assert.EqualError(t, err, "expect >= 1 got 0")
	err = u.Update("101")
	assert.EqualError(t, err, "expect <= 100 got 101")

	// not a number at all
	err = u.Update("nan")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid syntax")

	// failed updates leave the value untouched
	v, _ = u.ToUint()
	assert.Equal(t, uint64(66), v)

	// immutable values reject updates
	frozen := netparams.NewUint().Mutable(true).MustUpdate("42").Mutable(false)
	err = frozen.Update("43")
	assert.EqualError(t, err, "value is not mutable")
}

func TestBigUintValues(t *testing.T) {
	b := netparams.NewBigUint(netparams.BigUintGTZero()).Mutable(true).MustUpdate("1000")
	assert.NotNil(t, b)

	// values past 64 bits are fine
	err := b.Update("340282366920938463463374607431768211456")
	assert.NoError(t, err)
	v, err := b.ToBigUint()
	assert.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211456", v.String())

	// the returned value is a copy
	v.Set(num.NewUint(1))
	v2, _ := b.ToBigUint()
	assert.Equal(t, "340282366920938463463374607431768211456", v2.String())

	// errors cases now
	err = b.Update("0")
	assert.EqualError(t, err, "expect > 0 got 0")
	err = b.Update("-100")
	assert.EqualError(t, err, `invalid uint "-100"`)
	err = b.Update("one thousand")
	assert.EqualError(t, err, `invalid uint "one thousand"`)
}

func TestStringValues(t *testing.T) {
	s := netparams.NewString().Mutable(true).MustUpdate("network")
	assert.NotNil(t, s)

	v, err := s.ToString()
	assert.NoError(t, err)
	assert.Equal(t, "network", v)

	err = s.Update("witan-admin")
	assert.NoError(t, err)
	assert.Equal(t, "witan-admin", s.String())

	_, err = s.ToUint()
	assert.EqualError(t, err, "not a uint value")
}
