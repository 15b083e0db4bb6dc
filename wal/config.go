package wal

// Config configures a Wal instance.
type Config struct {
	// Path is an existing directory under which Open creates (or reuses)
	// the "wal" subdirectory holding wal.log.
	Path string

	// SyncOnWrite, when true, calls File.Sync after the file header and
	// after every record write. The write path always flushes (bytes are
	// handed to the OS before WriteEntry returns); SyncOnWrite adds an
	// fsync on top for callers that need a crash-consistency guarantee
	// stronger than the default.
	SyncOnWrite bool

	// CompressValues, when true, makes WriteEntry Snappy-compress the
	// value payload before it is framed and checksummed, tagging the
	// record RecordPutSnappy instead of RecordPut. Entries written this
	// way must be read back with Entry.Decoded to recover the original
	// bytes; Entry.Value continues to return the literal on-disk bytes.
	CompressValues bool
}
