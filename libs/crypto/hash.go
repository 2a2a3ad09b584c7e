package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Hash returns the sha3-256 digest of the given bytes.
func Hash(key []byte) []byte {
	hasher := sha3.New256()
	hasher.Write(key)
	return hasher.Sum(nil)
}

// HashToHex returns the sha3-256 digest of the given bytes, hex encoded.
func HashToHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// RandomHash returns the hex encoded hash of a random payload, used
// wherever a unique opaque identifier is needed.
func RandomHash() string {
	data := make([]byte, 10)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return hex.EncodeToString(Hash(data))
}
