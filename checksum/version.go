package checksum

import (
	"bytes"
	"encoding/hex"

	"go.uber.org/zap"
)

/*
Multi-byte versions are not prepended as a block. With m version bytes and a
payload basis of n bytes (20 for hashes, 33 for keys) the spacing is n/m, and
version byte j is written just before payload byte spacing*j:

	V0 D0 .. D(s-1) V1 Ds .. D(2s-1) V2 ...

A single version byte reduces to the plain bitcoin layout. After insertion
version byte j sits at offset (spacing+1)*j, which is the stride used to pull
it back out. Both directions stop once all m version bytes are placed.
*/

func interleave(version, data []byte, basis int) []byte {
	spacing := basis / len(version)
	versioned := make([]byte, 0, len(data)+len(version))

	j := 0
	for i, b := range data {
		if j < len(version) && i == spacing*j {
			versioned = append(versioned, version[j])
			j++
		}
		versioned = append(versioned, b)
	}
	return versioned
}

// fits reports whether every version byte lands inside a payload of n bytes.
func fits(version []byte, n, basis int) bool {
	spacing := basis / len(version)
	return n > spacing*(len(version)-1)
}

func extract(versioned []byte, m, basis int) (version, data []byte) {
	spacing := basis / m
	version = make([]byte, 0, m)
	data = make([]byte, 0, len(versioned))

	j := 0
	for i, b := range versioned {
		if j < m && i == (spacing+1)*j {
			version = append(version, b)
			j++
			continue
		}
		data = append(data, b)
	}
	return version, data
}

// checkVersion extracts and validates the version bytes of a versioned buffer.
func (c *Codec) checkVersion(versioned, expected []byte, basis int) ([]byte, error) {
	version, data := extract(versioned, len(expected), basis)
	c.logger.Debug("extracted version",
		zap.String("versioned", hex.EncodeToString(versioned)),
		zap.String("expected", hex.EncodeToString(expected)),
		zap.String("actual", hex.EncodeToString(version)))

	if !bytes.Equal(version, expected) {
		return nil, &VersionMismatchError{
			Expected: append([]byte(nil), expected...),
			Actual:   version,
		}
	}
	return data, nil
}
