package checksum

import (
	"github.com/mr-tron/base58"
)

// Base58 was an algorithm invented with bitcoin.
// It is base64 minus the characters 0 O l I + / which are easily confused
// with one another when an address is copied by hand.

func Base58Encode(input []byte) string {
	return base58.Encode(input)
}

// Base58Decode returns a *Base58DecodeError for input outside the alphabet.
func Base58Decode(input string) ([]byte, error) {
	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, &Base58DecodeError{Input: input, Err: err}
	}
	return decoded, nil
}

// Base58DecodeUnsafe is Base58Decode with the failure collapsed into ok.
func Base58DecodeUnsafe(input string) (decoded []byte, ok bool) {
	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, false
	}
	return decoded, true
}
