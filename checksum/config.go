package checksum

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	addressBasis = 20 // length of a public key hash
	keyBasis     = 33 // 32 byte secret plus the compression flag

	// MainnetPubKeyHashVersion is the bitcoin mainnet address version; such
	// addresses start with 1.
	MainnetPubKeyHashVersion = byte(0x00)
	// MainnetPrivateKeyVersion is the bitcoin mainnet WIF version.
	MainnetPrivateKeyVersion = byte(0x80)
)

// Parameter names accepted by ParseParams. Each field has an underscore and a
// hyphenated spelling; the hyphenated one wins when both are present.
const (
	ParamPrivateKeyVersion = "private_key_version"
	ParamAddressVersion    = "address_pubkeyhash_version"
	ParamChecksumValue     = "address_checksum_value"
)

var paramAliases = map[string]string{
	ParamPrivateKeyVersion: "private-key-version",
	ParamAddressVersion:    "address-pubkeyhash-version",
	ParamChecksumValue:     "address-checksum-value",
}

var paramOrder = []string{ParamPrivateKeyVersion, ParamAddressVersion, ParamChecksumValue}

// Config describes one chain's address and key format.
type Config struct {
	AddressVersion    []byte
	PrivateKeyVersion []byte
	ChecksumPad       [checksumLength]byte
}

// DefaultConfig is bitcoin mainnet: version 0x00 addresses, 0x80 keys and
// no checksum pad.
func DefaultConfig() Config {
	return Config{
		AddressVersion:    []byte{MainnetPubKeyHashVersion},
		PrivateKeyVersion: []byte{MainnetPrivateKeyVersion},
	}
}

func (c Config) clone() Config {
	return Config{
		AddressVersion:    append([]byte(nil), c.AddressVersion...),
		PrivateKeyVersion: append([]byte(nil), c.PrivateKeyVersion...),
		ChecksumPad:       c.ChecksumPad,
	}
}

// Validate checks that both versions can be interleaved into their payloads.
func (c Config) Validate() error {
	if err := validateVersion(ParamAddressVersion, c.AddressVersion, addressBasis); err != nil {
		return err
	}
	return validateVersion(ParamPrivateKeyVersion, c.PrivateKeyVersion, keyBasis)
}

func validateVersion(field string, version []byte, basis int) error {
	if len(version) == 0 {
		return &ConfigError{Field: field, Err: errors.New("version must not be empty")}
	}
	if len(version) > basis {
		return &ConfigError{
			Field: field,
			Value: hex.EncodeToString(version),
			Err:   errors.Errorf("version longer than %d bytes", basis),
		}
	}
	return nil
}

// ParseParams builds a Config from a parameter bag of hex strings, starting
// from DefaultConfig. Fields that are absent or empty keep their defaults.
func ParseParams(params map[string]string) (Config, error) {
	cfg := DefaultConfig()
	for _, name := range paramOrder {
		for _, key := range []string{name, paramAliases[name]} {
			value, ok := params[key]
			if !ok || value == "" {
				continue
			}
			if err := cfg.set(name, key, value); err != nil {
				return Config{}, err
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseParamsJSON is ParseParams for a JSON object such as the params block
// of a MultiChain chain description.
func ParseParamsJSON(data []byte) (Config, error) {
	if !gjson.ValidBytes(data) {
		return Config{}, &ConfigError{Field: "params", Err: errors.New("malformed json")}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Config{}, &ConfigError{Field: "params", Err: errors.New("expected a json object")}
	}

	params := make(map[string]string)
	for _, name := range paramOrder {
		for _, key := range []string{name, paramAliases[name]} {
			res := root.Get(key)
			if !res.Exists() || res.Type == gjson.Null {
				continue
			}
			if res.Type != gjson.String {
				return Config{}, &ConfigError{Field: key, Value: res.Raw, Err: errors.New("expected a hex string")}
			}
			params[key] = res.String()
		}
	}
	return ParseParams(params)
}

func (c *Config) set(name, key, value string) error {
	b, err := hex.DecodeString(value)
	if err != nil {
		return &ConfigError{Field: key, Value: value, Err: errors.Wrap(err, "decode hex")}
	}

	switch name {
	case ParamPrivateKeyVersion:
		c.PrivateKeyVersion = b
	case ParamAddressVersion:
		c.AddressVersion = b
	case ParamChecksumValue:
		if len(b) != checksumLength {
			return &ConfigError{Field: key, Value: value, Err: errors.Errorf("checksum value must be %d bytes", checksumLength)}
		}
		copy(c.ChecksumPad[:], b)
	}
	return nil
}
