package checksum

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const compressedFlag = byte(0x01)

/*
- Step 1: hash the public key with sha256, then ripemd160 ("public key hash")
- Step 2: interleave the address version into the public key hash
- Step 3: append the padded checksum of the versioned hash
- Step 4: base58 encode; the result is the address
*/

// AddressFromHash encodes a 20 byte public key hash as an address.
func (c *Codec) AddressFromHash(hash []byte) (string, error) {
	if len(hash) != addressBasis {
		return "", errors.Wrapf(ErrHashLength, "got %d bytes", len(hash))
	}
	versioned := interleave(c.cfg.AddressVersion, hash, addressBasis)
	address := c.Encode(versioned)

	c.logger.Debug("address from hash",
		zap.String("hash", hex.EncodeToString(hash)),
		zap.String("versioned", hex.EncodeToString(versioned)),
		zap.String("address", address))
	return address, nil
}

// AddressFromPublicKey hashes an encoded public key and returns its address.
func (c *Codec) AddressFromPublicKey(pubKey []byte) string {
	// Hash160 is always 20 bytes
	address, _ := c.AddressFromHash(Hash160(pubKey))
	return address
}

// HashFromAddress returns the public key hash inside address. Decode errors
// are returned as from Decode; a foreign version yields a
// *VersionMismatchError.
func (c *Codec) HashFromAddress(address string) ([]byte, error) {
	versioned, err := c.Decode(address)
	if err != nil {
		return nil, err
	}
	hash, err := c.checkVersion(versioned, c.cfg.AddressVersion, addressBasis)
	if err != nil {
		return nil, err
	}
	if len(hash) != addressBasis {
		return nil, errors.Wrapf(ErrHashLength, "got %d bytes", len(hash))
	}
	return hash, nil
}

// IsValidAddress reports whether address decodes under this codec's checksum
// pad and carries its address version.
func (c *Codec) IsValidAddress(address string) bool {
	_, err := c.HashFromAddress(address)
	return err == nil
}

// EncodeKey encodes a 32 byte private key with the private key version.
// When compressed is set the 0x01 compression flag is appended first, as in
// WIF. Keys that DecodeKey could not give back unchanged are rejected with
// ErrKeyLength: a compressed key that is not 32 bytes, or an uncompressed
// 33 byte key ending in 0x01.
func (c *Codec) EncodeKey(key []byte, compressed bool) (string, error) {
	if compressed && len(key) != keyBasis-1 {
		return "", errors.Wrapf(ErrKeyLength, "compressed key of %d bytes", len(key))
	}
	if !compressed && len(key) == keyBasis && key[keyBasis-1] == compressedFlag {
		return "", errors.Wrap(ErrKeyLength, "uncompressed 33 byte key ending in the compression flag")
	}

	keyBuf := make([]byte, 0, len(key)+1)
	keyBuf = append(keyBuf, key...)
	if compressed {
		keyBuf = append(keyBuf, compressedFlag)
	}
	c.logger.Debug("encode key", zap.Int("length", len(keyBuf)), zap.Bool("compressed", compressed))
	return c.encodeVersioned(keyBuf)
}

// EncodePrivateKey is EncodeKey.
func (c *Codec) EncodePrivateKey(key []byte, compressed bool) (string, error) {
	return c.EncodeKey(key, compressed)
}

// EncodePublicKey encodes a serialized public key with the private key
// version. The key's own prefix byte says whether it is compressed, so no
// flag is appended; DecodePublicKey reverses it.
func (c *Codec) EncodePublicKey(pubKey []byte) (string, error) {
	return c.encodeVersioned(pubKey)
}

func (c *Codec) encodeVersioned(data []byte) (string, error) {
	if !fits(c.cfg.PrivateKeyVersion, len(data), keyBasis) {
		return "", errors.Wrapf(ErrPayloadTooShort, "%d byte key, %d byte version", len(data), len(c.cfg.PrivateKeyVersion))
	}
	versioned := interleave(c.cfg.PrivateKeyVersion, data, keyBasis)
	c.logger.Debug("interleaved key version", zap.String("versioned", hex.EncodeToString(versioned)))
	return c.Encode(versioned), nil
}

// DecodeKey reverses EncodeKey. The compression flag is recognised, and
// stripped, when the recovered data is a 32 byte key followed by 0x01.
func (c *Codec) DecodeKey(s string) (key []byte, compressed bool, err error) {
	data, err := c.DecodePublicKey(s)
	if err != nil {
		return nil, false, err
	}

	if len(data) == keyBasis && data[keyBasis-1] == compressedFlag {
		return data[:keyBasis-1], true, nil
	}
	return data, false, nil
}

// DecodePublicKey reverses EncodePublicKey, returning the recovered bytes
// without interpreting a compression flag.
func (c *Codec) DecodePublicKey(s string) ([]byte, error) {
	versioned, err := c.Decode(s)
	if err != nil {
		return nil, err
	}
	return c.checkVersion(versioned, c.cfg.PrivateKeyVersion, keyBasis)
}
