package wal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/snappy"
	"github.com/novuslabs/duralog/crc32c"
)

// Entry is one verified record read back from the log.
type Entry struct {
	Checksum  uint32
	Sequence  uint64
	Type      RecordType
	KeySize   uint32
	ValueSize uint32
	Key       []byte
	Value     []byte
}

// Decoded returns the entry's logical value bytes: Value unchanged for
// RecordPut, or Snappy-decompressed for RecordPutSnappy. Any other Type is
// returned as-is.
func (e *Entry) Decoded() ([]byte, error) {
	if e.Type != RecordPutSnappy {
		return e.Value, nil
	}
	decoded, err := snappy.Decode(nil, e.Value)
	if err != nil {
		return nil, fmt.Errorf("wal: decode snappy value for sequence %d: %w", e.Sequence, err)
	}
	return decoded, nil
}

// EntryIterator replays a wal.log file from its first record onward,
// verifying each record's checksum before returning it. It is single-shot:
// once Next returns false, either the log has been fully and cleanly
// consumed (Err returns nil), a corruption was found (Err returns a
// *Error with Kind WalFileCorrupted), or reading a record header failed
// with an I/O error other than EOF (Err returns a *Error with Kind
// WalFileError), and no further records will be produced even if more
// bytes follow in the file.
type EntryIterator struct {
	path  string
	file  *os.File
	entry Entry
	err   error
	done  bool
}

// newEntryIterator opens path and validates its file header. It returns
// WalFileDoesntExist if path is absent and WalFileCorrupted if the header's
// magic or version does not match what this package writes.
func newEntryIterator(path string) (*EntryIterator, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(path, WalFileDoesntExist, err)
		}
		return nil, newError(path, WalFileError, err)
	}

	var hdr [fileHeaderSize]byte
	if _, err := io.ReadFull(file, hdr[:]); err != nil {
		file.Close()
		return nil, newCorruptedError(path, "truncated file header")
	}
	if [4]byte{hdr[0], hdr[1], hdr[2], hdr[3]} != fileMagic {
		file.Close()
		return nil, newCorruptedError(path, "bad file magic")
	}
	if version := binary.LittleEndian.Uint32(hdr[4:8]); version != fileVersion {
		file.Close()
		return nil, newCorruptedError(path, fmt.Sprintf("unsupported file version %d", version))
	}

	return &EntryIterator{path: path, file: file}, nil
}

// Next advances the iterator and reports whether a verified Entry is now
// available through Entry. It returns false at clean end of log or once a
// corrupted record has been encountered; check Err to distinguish the two.
func (it *EntryIterator) Next() bool {
	if it.done {
		return false
	}

	var header [entryHeaderSize]byte
	_, err := io.ReadFull(it.file, header[:])
	if err != nil {
		it.done = true
		// A short or EOF read on the record header, however many bytes it
		// returned, terminates the iterator cleanly: nothing has committed
		// a new record past this point.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false
		}
		it.err = newError(it.path, WalFileError, err)
		return false
	}

	checksum := binary.LittleEndian.Uint32(header[0:4])
	sequence := binary.LittleEndian.Uint64(header[4:12])
	recordType := RecordType(header[12])
	keySize := binary.LittleEndian.Uint32(header[13:17])
	valueSize := binary.LittleEndian.Uint32(header[17:21])

	payload := make([]byte, keySize+valueSize)
	if _, err := io.ReadFull(it.file, payload); err != nil {
		it.done = true
		it.err = newCorruptedError(it.path, "truncated record payload")
		return false
	}

	sum := crc32c.New()
	sum.Update(header[4:])
	sum.Update(payload)
	if got := sum.Finalize(); got != checksum {
		it.done = true
		it.err = newCorruptedError(it.path, fmt.Sprintf("checksum mismatch at sequence %d: got %08x want %08x", sequence, got, checksum))
		return false
	}

	it.entry = Entry{
		Checksum:  checksum,
		Sequence:  sequence,
		Type:      recordType,
		KeySize:   keySize,
		ValueSize: valueSize,
		Key:       payload[:keySize:keySize],
		Value:     payload[keySize:],
	}
	return true
}

// Entry returns the record most recently produced by Next. It is only
// valid after a call to Next that returned true.
func (it *EntryIterator) Entry() *Entry { return &it.entry }

// Err returns the error that stopped iteration, or nil if iteration ended
// because the log was exhausted cleanly.
func (it *EntryIterator) Err() error { return it.err }

// Close releases the iterator's file handle.
func (it *EntryIterator) Close() error { return it.file.Close() }
