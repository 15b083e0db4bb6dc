package wal

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/snappy"
	"github.com/novuslabs/duralog/crc32c"
)

// RecordType is an opaque 8-bit tag describing what a record's value bytes
// mean to the caller. RecordPut is the only tag this package assigns
// meaning to beyond "a value was compressed or not" for RecordPutSnappy;
// any other value is the caller's to define.
type RecordType uint8

const (
	// RecordPut marks an uncompressed key/value write.
	RecordPut RecordType = 1
	// RecordPutSnappy marks a key/value write whose value bytes are
	// Snappy-compressed; read it back with Entry.Decoded.
	RecordPutSnappy RecordType = 2
)

const (
	fileHeaderSize  = 16
	fileVersion     = uint32(1)
	entryHeaderSize = 21 // checksum(4) + sequence(8) + type(1) + key_size(4) + value_size(4)
	recordTailSize  = entryHeaderSize - 4
	walDirName      = "wal"
	walFileName     = "wal.log"
)

var fileMagic = [4]byte{'W', 'A', 'L', 0}

// Wal is a single-writer, append-only log. It owns one open file handle for
// its lifetime; call Close to release it.
type Wal struct {
	config   Config
	sequence uint64
	file     *os.File
	logPath  string
}

// Open creates or reuses the WAL under config.Path. On success, the log
// file exists and has a valid 16-byte file header; the returned Wal's
// sequence counter starts at 0 regardless of how many records are already
// on disk; the last sequence in an existing log is not recovered.
func Open(config Config) (*Wal, error) {
	info, err := os.Stat(config.Path)
	if err != nil || !info.IsDir() {
		return nil, newError(config.Path, ConfigPathNotReadable, err)
	}

	walDir := filepath.Join(config.Path, walDirName)
	if err := os.MkdirAll(walDir, 0o755); err != nil {
		return nil, newError(config.Path, CannotCreateWalDirectory, err)
	}

	logPath := filepath.Join(walDir, walFileName)

	file, err := openLogFile(logPath, config.SyncOnWrite)
	if err != nil {
		return nil, newError(config.Path, WalFileError, err)
	}

	return &Wal{config: config, sequence: 0, file: file, logPath: logPath}, nil
}

// openLogFile creates wal.log with a fresh header if it does not exist yet,
// or opens it for append without touching the bytes already there.
func openLogFile(logPath string, syncOnWrite bool) (*os.File, error) {
	if _, err := os.Stat(logPath); err == nil {
		return os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND, 0o644)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	file, err := os.Create(logPath)
	if err != nil {
		return nil, err
	}
	if err := writeFileHeader(file, syncOnWrite); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

func writeFileHeader(file *os.File, syncOnWrite bool) error {
	var hdr [fileHeaderSize]byte
	copy(hdr[0:4], fileMagic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], fileVersion)
	if _, err := file.Write(hdr[:]); err != nil {
		return err
	}
	if syncOnWrite {
		return file.Sync()
	}
	return nil
}

// Sequence returns the sequence assigned to the most recent WriteEntry call,
// or 0 if none has happened yet on this Wal.
func (w *Wal) Sequence() uint64 { return w.sequence }

// LogPath returns the resolved path of the underlying wal.log file.
func (w *Wal) LogPath() string { return w.logPath }

// Close releases the writer's file handle.
func (w *Wal) Close() error { return w.file.Close() }

// WriteEntry appends one record for (key, value), assigns it the next
// sequence number, and returns that sequence. Any I/O error is returned
// unchanged. key and value may be empty; their lengths must each fit in a
// uint32.
func (w *Wal) WriteEntry(key, value []byte) (uint64, error) {
	w.sequence++
	seq := w.sequence

	recordType := RecordPut
	if w.config.CompressValues {
		value = snappy.Encode(nil, value)
		recordType = RecordPutSnappy
	}

	keySize := uint32(len(key))
	valueSize := uint32(len(value))

	var tail [recordTailSize]byte
	binary.LittleEndian.PutUint64(tail[0:8], seq)
	tail[8] = byte(recordType)
	binary.LittleEndian.PutUint32(tail[9:13], keySize)
	binary.LittleEndian.PutUint32(tail[13:17], valueSize)

	sum := crc32c.New()
	sum.Update(tail[:])
	sum.Update(key)
	sum.Update(value)
	checksum := sum.Finalize()

	buf := make([]byte, 4+len(tail)+len(key)+len(value))
	binary.LittleEndian.PutUint32(buf[0:4], checksum)
	copy(buf[4:4+len(tail)], tail[:])
	copy(buf[4+len(tail):4+len(tail)+len(key)], key)
	copy(buf[4+len(tail)+len(key):], value)

	if _, err := w.file.Write(buf); err != nil {
		return 0, err
	}
	if w.config.SyncOnWrite {
		if err := w.file.Sync(); err != nil {
			return 0, err
		}
	}

	return seq, nil
}

// Entries opens a fresh, read-only verifying iterator over every record
// written so far. It fails with WalFileDoesntExist if the log has never
// been created, and with WalFileCorrupted if the file header is invalid.
func (w *Wal) Entries() (*EntryIterator, error) {
	return newEntryIterator(w.logPath)
}
