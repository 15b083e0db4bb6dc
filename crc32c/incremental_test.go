package crc32c

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementalMatchesChecksum(t *testing.T) {
	for _, size := range sizes {
		data := randomData(size, int64(size)+7)
		inc := New()
		inc.Update(data)
		assert.Equal(t, Checksum(data), inc.Finalize(), "size %d", size)
	}
}

func TestIncrementalSplitFeeding(t *testing.T) {
	data := randomData(4099, 1234)
	want := Checksum(data)

	for split := 0; split <= len(data); split++ {
		inc := New()
		inc.Update(data[:split])
		inc.Update(data[split:])
		got := inc.Finalize()
		require.Equalf(t, want, got, "split at %d", split)
	}
}

func TestIncrementalManySmallWrites(t *testing.T) {
	data := randomData(10007, 77)
	want := Checksum(data)

	inc := New()
	for i := 0; i < len(data); i++ {
		inc.Update(data[i : i+1])
	}
	assert.Equal(t, want, inc.Finalize())
}

func TestIncrementalValueIsIdempotent(t *testing.T) {
	data := randomData(500, 55)
	inc := New()
	inc.Update(data[:200])

	v1 := inc.Value()
	v2 := inc.Value()
	assert.Equal(t, v1, v2)

	// Value must not perturb subsequent updates.
	inc.Update(data[200:])
	want := Checksum(data)
	assert.Equal(t, want, inc.Finalize())
}

func TestIncrementalReset(t *testing.T) {
	data := randomData(1000, 33)
	inc := New()
	inc.Update(data)
	inc.Finalize()

	inc.Reset()
	fresh := New()
	assert.Equal(t, fresh.Value(), inc.Value())

	inc.Update(data)
	fresh.Update(data)
	assert.Equal(t, fresh.Finalize(), inc.Finalize())
}

func TestIncrementalEmpty(t *testing.T) {
	inc := New()
	assert.Equal(t, uint32(0), inc.Finalize())
}

func TestIncrementalAcrossBlockBoundaries(t *testing.T) {
	data := randomData(100, 42)
	chunkSizes := []int{1, 2, 5, 16, 15, 17, 32}

	for _, chunk := range chunkSizes {
		t.Run(fmt.Sprintf("chunk=%d", chunk), func(t *testing.T) {
			inc := New()
			for i := 0; i < len(data); i += chunk {
				end := i + chunk
				if end > len(data) {
					end = len(data)
				}
				inc.Update(data[i:end])
			}
			assert.Equal(t, Checksum(data), inc.Finalize())
		})
	}
}
