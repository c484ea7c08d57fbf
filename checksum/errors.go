package checksum

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidChecksum is returned when the checksum embedded in a decoded
	// string does not match the recomputed, pad-XORed checksum. Buffers too
	// short to carry a checksum fail the same way.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrHashLength is returned when an address is built from, or decodes to,
	// something that is not a 20 byte public key hash.
	ErrHashLength = errors.New("public key hash must be 20 bytes")

	// ErrKeyLength is returned for a key whose length, together with its
	// compression flag, would not decode back to the same key.
	ErrKeyLength = errors.New("invalid private key length")

	// ErrPayloadTooShort is returned when a key is too short for every version
	// byte to be interleaved into it.
	ErrPayloadTooShort = errors.New("payload too short for version prefix")
)

// ConfigError reports a malformed configuration field.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Base58DecodeError reports a string containing characters outside the
// base58 alphabet.
type Base58DecodeError struct {
	Input string
	Err   error
}

func (e *Base58DecodeError) Error() string {
	return fmt.Sprintf("base58 decode %q: %v", e.Input, e.Err)
}

func (e *Base58DecodeError) Unwrap() error { return e.Err }

// VersionMismatchError is returned when the version bytes recovered from a
// decoded string differ from the codec's configured version.
type VersionMismatchError struct {
	Expected []byte
	Actual   []byte
}

func (e *VersionMismatchError) Error() string {
	return "version mismatch: " + hex.EncodeToString(e.Expected) + ":" + hex.EncodeToString(e.Actual)
}

// IsDecodeError reports whether err came from the base58 or checksum stage
// of decoding, as opposed to version validation.
func IsDecodeError(err error) bool {
	var b58 *Base58DecodeError
	return errors.Is(err, ErrInvalidChecksum) || errors.As(err, &b58)
}

// IsVersionMismatch reports whether err is, or wraps, a VersionMismatchError.
func IsVersionMismatch(err error) bool {
	var vm *VersionMismatchError
	return errors.As(err, &vm)
}
