package checksum_test

import (
	"encoding/hex"
	"fmt"

	"base58checksum/checksum"
)

// This example decodes a bitcoin mainnet address with the default codec.
func ExampleCodec_HashFromAddress() {
	codec, err := checksum.New(checksum.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}

	hash, err := codec.HashFromAddress("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Public key hash: %x\n", hash)

	// Output:
	// Public key hash: 77bff20c60e522dfaa3350c39b030a5d004e839a
}

// This example encodes a private key for a MultiChain blockchain with a four
// byte key version and a checksum pad.
func ExampleCodec_EncodeKey() {
	codec, err := checksum.NewFromParams(map[string]string{
		"private-key-version":    "8025B89E",
		"address-checksum-value": "7B7AEF76",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	key, _ := hex.DecodeString("B69CA8FFAE36F11AD445625E35BF6AC57D6642DDBE470DD3E7934291B2000D78")
	encoded, err := codec.EncodeKey(key, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Encoded key:", encoded)

	// Output:
	// Encoded key: VEEWgYhDhqWnNnDCXXjirJYXGDFPjH1B8v6hmcnj1kLXrkpxArmz7xXw
}
