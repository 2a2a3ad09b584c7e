package rand

import (
	"crypto/rand"
	"fmt"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomStr returns a random alphanumeric string of the given size.
func RandomStr(size int) string {
	b := RandomBytes(size)
	for i, c := range b {
		b[i] = charset[int(c)%len(charset)]
	}
	return string(b)
}

// RandomBytes returns random bytes of the given size.
func RandomBytes(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("couldn't read random bytes: %v", err))
	}
	return b
}
