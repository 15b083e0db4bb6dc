package crc32c

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implementations lists every pure variant this package ships, keyed by
// name so test failures point at the offending one directly.
func implementations() map[string]func([]byte) uint32 {
	return map[string]func([]byte) uint32{
		"reference":   Reference,
		"byteAtATime": ByteAtATime,
		"slicing8":    Slicing8,
		"slicing16":   Slicing16,
		"slicing32":   Slicing32,
		"hardware":    Hardware,
	}
}

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want uint32
	}{
		{"empty", nil, 0x00000000},
		{"single byte", []byte{0x01}, 0xA016D052},
		{"hello world", []byte("hello world"), 0xC99465AA},
	}

	for name, impl := range implementations() {
		impl := impl
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, impl(tc.data))
			})
		}
	}
}

// sizes straddle every slicing block boundary this package implements.
var sizes = []int{0, 1, 3, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 127, 128, 257, 4096, 4097}

func randomData(size int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, size)
	r.Read(b)
	return b
}

func TestImplementationsAgree(t *testing.T) {
	for _, size := range sizes {
		data := randomData(size, int64(size)+1)
		want := Reference(data)
		for name, impl := range implementations() {
			t.Run(fmt.Sprintf("%s/size=%d", name, size), func(t *testing.T) {
				assert.Equal(t, want, impl(data), "mismatch for size %d", size)
			})
		}
	}
}

func TestHardwareAvailableIsConsistent(t *testing.T) {
	// Hardware must match the software oracle whether or not the CPU
	// actually has the instruction; HardwareAvailable just tells us which
	// path we exercised.
	data := randomData(4096, 99)
	require.Equal(t, Reference(data), Hardware(data))
	t.Logf("hardware available: %v", HardwareAvailable())
}

func TestZeroAndOnesPatterns(t *testing.T) {
	zeros := make([]byte, 1024)
	ones := make([]byte, 1024)
	for i := range ones {
		ones[i] = 0xFF
	}
	for name, impl := range implementations() {
		assert.Equal(t, Reference(zeros), impl(zeros), "%s zeros", name)
		assert.Equal(t, Reference(ones), impl(ones), "%s ones", name)
	}
}
