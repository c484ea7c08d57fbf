// Package checksum implements Base58Check with configurable, possibly
// multi-byte version prefixes and an XOR checksum pad, the address and key
// format used by MultiChain. The default configuration is bitcoin mainnet.
//
// An address is built by interleaving the version bytes into the public key
// hash, appending the first 4 bytes of its double sha256 XORed with the
// chain's checksum pad, and base58 encoding the result. Keys follow the same
// scheme with the private key version.
package checksum

import (
	"bytes"

	"go.uber.org/zap"
)

// Codec encodes and decodes strings for one chain. It is immutable after New
// and safe for concurrent use.
type Codec struct {
	cfg    Config
	logger *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger makes the codec log intermediate buffers at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New validates cfg and returns a codec holding a private copy of it.
func New(cfg Config, opts ...Option) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Codec{
		cfg:    cfg.clone(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromParams builds a codec from a MultiChain style parameter bag, see
// ParseParams.
func NewFromParams(params map[string]string, opts ...Option) (*Codec, error) {
	cfg, err := ParseParams(params)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Config returns a copy of the codec's configuration.
func (c *Codec) Config() Config {
	return c.cfg.clone()
}

// Encode appends the padded checksum to payload and base58 encodes it.
func (c *Codec) Encode(payload []byte) string {
	sum := checksum(payload, c.cfg.ChecksumPad)

	full := make([]byte, 0, len(payload)+checksumLength)
	full = append(full, payload...)
	full = append(full, sum[:]...)
	return Base58Encode(full)
}

// decodeRaw splits off the trailing checksum and verifies it.
func (c *Codec) decodeRaw(buf []byte) ([]byte, error) {
	if len(buf) < checksumLength {
		return nil, ErrInvalidChecksum
	}
	payload := buf[:len(buf)-checksumLength]
	actual := buf[len(buf)-checksumLength:]
	expected := checksum(payload, c.cfg.ChecksumPad)

	if !bytes.Equal(actual, expected[:]) {
		return nil, ErrInvalidChecksum
	}
	return payload, nil
}

// DecodeUnsafe is Decode for callers that expect failures, such as address
// validation; ok is false for malformed base58 or a bad checksum.
func (c *Codec) DecodeUnsafe(s string) (payload []byte, ok bool) {
	buf, ok := Base58DecodeUnsafe(s)
	if !ok {
		return nil, false
	}
	payload, err := c.decodeRaw(buf)
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Decode returns the payload of a base58 check encoded string. It fails with
// a *Base58DecodeError for characters outside the alphabet and with
// ErrInvalidChecksum when the checksum does not verify.
func (c *Codec) Decode(s string) ([]byte, error) {
	buf, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	return c.decodeRaw(buf)
}
