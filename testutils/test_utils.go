package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"log"
)

func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Panic(err)
	}
	return b
}

// RandomHash returns a random 20 byte public key hash.
func RandomHash() []byte {
	return RandomBytes(20)
}

// RandomKey returns a random 32 byte private key.
func RandomKey() []byte {
	return RandomBytes(32)
}

func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Panic(err)
	}
	return b
}
