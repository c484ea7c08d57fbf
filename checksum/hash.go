package checksum

import (
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

const checksumLength = 4 // in bytes

func Sha256(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

func Ripemd160(b []byte) []byte {
	hasher := ripemd160.New()
	// hash.Hash.Write never returns an error
	_, _ = hasher.Write(b)
	return hasher.Sum(nil)
}

// DoubleSha256 runs the input through sha256 twice, the digest the
// checksum is cut from.
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 is the "public key hash": ripemd160 over the sha256 of the key.
func Hash160(b []byte) []byte {
	return Ripemd160(Sha256(b))
}

// checksum takes the first 4 bytes of the double sha256 of payload and XORs
// them with pad.
func checksum(payload []byte, pad [checksumLength]byte) (sum [checksumLength]byte) {
	h := DoubleSha256(payload)
	for i := range sum {
		sum[i] = h[i] ^ pad[i]
	}
	return
}
