package rand

import (
	"crypto/rand"
	"math/big"
)

// NewNonce returns a random uint64 drawn from the crypto source.
func NewNonce() uint64 {
	bound := &big.Int{}
	bound.SetUint64(^uint64(0))
	nonce, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic(err)
	}
	return nonce.Uint64()
}
