package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestInterleaveLayout(t *testing.T) {
	tests := []struct {
		name     string
		version  []byte
		data     []byte
		basis    int
		expected []byte
	}{
		{
			name:     "single byte is prepended",
			version:  []byte{0xaa},
			data:     seq(4),
			basis:    4,
			expected: []byte{0xaa, 0, 1, 2, 3},
		},
		{
			name:     "four bytes spaced by five",
			version:  []byte{0xaa, 0xbb, 0xcc, 0xdd},
			data:     seq(20),
			basis:    20,
			expected: []byte{0xaa, 0, 1, 2, 3, 4, 0xbb, 5, 6, 7, 8, 9, 0xcc, 10, 11, 12, 13, 14, 0xdd, 15, 16, 17, 18, 19},
		},
		{
			name:     "uneven spacing leaves a tail",
			version:  []byte{0xaa, 0xbb, 0xcc},
			data:     seq(20),
			basis:    20,
			expected: []byte{0xaa, 0, 1, 2, 3, 4, 5, 0xbb, 6, 7, 8, 9, 10, 11, 0xcc, 12, 13, 14, 15, 16, 17, 18, 19},
		},
		{
			name:     "key without compression flag",
			version:  []byte{0xaa, 0xbb, 0xcc, 0xdd},
			data:     seq(32),
			basis:    33,
			expected: append(append(append(append(append(append(append(append([]byte{0xaa}, seq(8)...), 0xbb), seq(16)[8:]...), 0xcc), seq(24)[16:]...), 0xdd), seq(32)[24:]...)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versioned := interleave(tt.version, tt.data, tt.basis)
			assert.Equal(t, tt.expected, versioned)

			version, data := extract(versioned, len(tt.version), tt.basis)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.data, data)
		})
	}
}

// The trailing byte of a 33 byte key sits on the extraction stride once the
// version is exhausted; it must stay part of the data.
func TestExtractStopsAfterVersion(t *testing.T) {
	version := []byte{0x80, 0x25, 0xb8, 0x9e}
	data := append(seq(32), compressedFlag)

	versioned := interleave(version, data, keyBasis)
	assert.Len(t, versioned, 37)
	assert.Equal(t, compressedFlag, versioned[(keyBasis/len(version)+1)*len(version)])

	gotVersion, gotData := extract(versioned, len(version), keyBasis)
	assert.Equal(t, version, gotVersion)
	assert.Equal(t, data, gotData)
}

func TestExtractShortBuffer(t *testing.T) {
	version, data := extract([]byte{0xaa, 1, 2}, 4, addressBasis)
	assert.Equal(t, []byte{0xaa}, version)
	assert.Equal(t, []byte{1, 2}, data)
}

func TestFits(t *testing.T) {
	assert.True(t, fits([]byte{0x80}, 1, keyBasis))
	assert.False(t, fits([]byte{0x80}, 0, keyBasis))
	assert.True(t, fits(seq(4), 25, keyBasis))
	assert.False(t, fits(seq(4), 24, keyBasis))
}
