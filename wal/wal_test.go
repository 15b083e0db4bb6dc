package wal

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestWal(t *testing.T, cfg Config) *Wal {
	t.Helper()
	w, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w
}

func TestOpenCreatesHeaderedLogFile(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})

	raw, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)
	require.Len(t, raw, fileHeaderSize)
	assert.Equal(t, fileMagic[:], raw[0:4])
	assert.Equal(t, fileVersion, binary.LittleEndian.Uint32(raw[4:8]))
}

func TestOpenMissingPathFails(t *testing.T) {
	_, err := Open(Config{Path: filepath.Join(t.TempDir(), "does-not-exist")})
	require.Error(t, err)

	var walErr *Error
	require.True(t, errors.As(err, &walErr))
	assert.Equal(t, ConfigPathNotReadable, walErr.Kind)
}

func TestWriteEntryKnownChecksum(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})

	seq, err := w.WriteEntry([]byte("test_key"), []byte("test_value"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	assert.Equal(t, uint64(1), w.Sequence())

	raw, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)
	record := raw[fileHeaderSize:]
	assert.Equal(t, uint32(0xfe9abfa9), binary.LittleEndian.Uint32(record[0:4]))
}

func TestWriteEntrySequenceIncreasesMonotonically(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})

	for i := 1; i <= 5; i++ {
		seq, err := w.WriteEntry([]byte("k"), []byte("v"))
		require.NoError(t, err)
		assert.Equal(t, uint64(i), seq)
	}
}

func TestWriteAndReplayRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})

	type kv struct{ key, value string }
	records := []kv{
		{"alpha", "one"},
		{"beta", ""},
		{"", "gamma-value"},
		{"delta", "four"},
	}
	for _, r := range records {
		_, err := w.WriteEntry([]byte(r.key), []byte(r.value))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	var got []kv
	for it.Next() {
		e := it.Entry()
		got = append(got, kv{string(e.Key), string(e.Value)})
	}
	require.NoError(t, it.Err())
	assert.Equal(t, records, got)
}

func TestReplayEmptyHeaderOnlyLog(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	require.NoError(t, w.Close())

	it, err := w.Entries()
	require.NoError(t, err)
	defer it.Close()

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestReplayAbsentLogFails(t *testing.T) {
	dir := t.TempDir()
	_, err := newEntryIterator(filepath.Join(dir, "wal", "wal.log"))
	require.Error(t, err)

	var walErr *Error
	require.True(t, errors.As(err, &walErr))
	assert.Equal(t, WalFileDoesntExist, walErr.Kind)
}

func TestReplayBadMagicFails(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)
	raw[0] = 'X'
	require.NoError(t, os.WriteFile(w.LogPath(), raw, 0o644))

	_, err = newEntryIterator(w.LogPath())
	require.Error(t, err)
	var walErr *Error
	require.True(t, errors.As(err, &walErr))
	assert.Equal(t, WalFileCorrupted, walErr.Kind)
}

func TestReplayStopsAtCorruptedChecksum(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	_, err := w.WriteEntry([]byte("good"), []byte("record"))
	require.NoError(t, err)
	_, err = w.WriteEntry([]byte("second"), []byte("record"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)
	// Flip a byte inside the first record's checksum field.
	raw[fileHeaderSize] ^= 0xFF
	require.NoError(t, os.WriteFile(w.LogPath(), raw, 0o644))

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	assert.False(t, it.Next())
	require.Error(t, it.Err())
	var walErr *Error
	require.True(t, errors.As(it.Err(), &walErr))
	assert.Equal(t, WalFileCorrupted, walErr.Kind)
}

func TestReplayStopsAtTruncatedPayload(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	_, err := w.WriteEntry([]byte("key"), []byte("a-longer-value-than-the-truncation-point"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)
	truncated := raw[:len(raw)-10]
	require.NoError(t, os.WriteFile(w.LogPath(), truncated, 0o644))

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	assert.False(t, it.Next())
	require.Error(t, it.Err())
	var walErr *Error
	require.True(t, errors.As(it.Err(), &walErr))
	assert.Equal(t, WalFileCorrupted, walErr.Kind)
}

func TestReplayCleanStopOnTruncatedHeaderBoundary(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	_, err := w.WriteEntry([]byte("one"), []byte("value-one"))
	require.NoError(t, err)
	_, err = w.WriteEntry([]byte("two"), []byte("value-two"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)

	// Truncate exactly at the boundary between the first and second
	// records: the reader sees a clean EOF trying to read the second
	// record's header.
	firstRecordEnd := fileHeaderSize + 4 + recordTailSize + len("one") + len("value-one")
	clean := raw[:firstRecordEnd]
	require.NoError(t, os.WriteFile(w.LogPath(), clean, 0o644))

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	assert.Equal(t, "one", string(it.Entry().Key))

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestReplayCleanStopOnTruncatedRecordHeader(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	_, err := w.WriteEntry([]byte("one"), []byte("value-one"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)
	// Cut off a few bytes into the (only) record's header: a short read of
	// the record header, however many bytes it returned, terminates the
	// iterator cleanly (no record is ever partially yielded).
	truncated := raw[:fileHeaderSize+entryHeaderSize-3]
	require.NoError(t, os.WriteFile(w.LogPath(), truncated, 0o644))

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

// fixtureRecordSize is the on-disk size of every record written by the
// fixture below: 4 (checksum) + recordTailSize (sequence/type/sizes) +
// len("key") + len("value").
const fixtureRecordSize = 4 + recordTailSize + len("key") + len("value")

func TestReplayAllTruncationPointsAreHandled(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	const numRecords = 3
	for i := 0; i < numRecords; i++ {
		_, err := w.WriteEntry([]byte("key"), []byte("value"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	full, err := os.ReadFile(w.LogPath())
	require.NoError(t, err)
	require.Len(t, full, fileHeaderSize+numRecords*fixtureRecordSize)

	for cut := fileHeaderSize; cut < len(full); cut++ {
		truncated := full[:cut]
		path := filepath.Join(t.TempDir(), "wal.log")
		require.NoError(t, os.WriteFile(path, truncated, 0o644))

		it, err := newEntryIterator(path)
		require.NoError(t, err)

		complete := (cut - fileHeaderSize) / fixtureRecordSize
		offsetIntoNext := (cut - fileHeaderSize) % fixtureRecordSize
		wantCorrupted := offsetIntoNext >= entryHeaderSize

		got := 0
		for it.Next() {
			got++
		}
		require.Equalf(t, complete, got, "cut=%d", cut)
		if wantCorrupted {
			require.Errorf(t, it.Err(), "cut=%d", cut)
			var walErr *Error
			require.True(t, errors.As(it.Err(), &walErr), "cut=%d", cut)
			assert.Equalf(t, WalFileCorrupted, walErr.Kind, "cut=%d", cut)
		} else {
			require.NoErrorf(t, it.Err(), "cut=%d", cut)
		}
		it.Close()
	}
}

func TestCompressValuesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir, CompressValues: true})

	value := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	_, err := w.WriteEntry([]byte("squeeze"), value)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	e := it.Entry()
	assert.Equal(t, RecordPutSnappy, e.Type)
	assert.NotEqual(t, value, e.Value)

	decoded, err := e.Decoded()
	require.NoError(t, err)
	assert.Equal(t, value, decoded)

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestEntryDecodedPassesThroughUncompressed(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	_, err := w.WriteEntry([]byte("key"), []byte("plain-value"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	decoded, err := it.Entry().Decoded()
	require.NoError(t, err)
	assert.Equal(t, []byte("plain-value"), decoded)
}

func TestWriteEntryEmptyKeyAndValue(t *testing.T) {
	dir := t.TempDir()
	w := openTestWal(t, Config{Path: dir})
	_, err := w.WriteEntry(nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	it, err := newEntryIterator(w.LogPath())
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	e := it.Entry()
	assert.Equal(t, uint32(0), e.KeySize)
	assert.Equal(t, uint32(0), e.ValueSize)
	assert.Empty(t, e.Key)
	assert.Empty(t, e.Value)
}

func TestReopenResetsSequenceButNotRecords(t *testing.T) {
	dir := t.TempDir()
	w1 := openTestWal(t, Config{Path: dir})
	_, err := w1.WriteEntry([]byte("first"), []byte("one"))
	require.NoError(t, err)
	require.NoError(t, w1.Close())

	w2 := openTestWal(t, Config{Path: dir})
	assert.Equal(t, uint64(0), w2.Sequence())
	seq, err := w2.WriteEntry([]byte("second"), []byte("two"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	require.NoError(t, w2.Close())

	it, err := newEntryIterator(w2.LogPath())
	require.NoError(t, err)
	defer it.Close()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Entry().Key))
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"first", "second"}, keys)
}
