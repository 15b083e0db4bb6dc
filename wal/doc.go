// Package wal implements a durable, append-only write-ahead log for an
// embedded key-value store. Every mutation a higher-level store commits must
// first be made durable as a WAL record, protected by a CRC32C checksum
// (see the crc32c package), so that a restart can replay the log and
// reconstruct whatever state sits above it.
//
// The log supports exactly one writer per directory and no concurrent
// readers while that writer is active; see Open and Wal.Entries.
package wal
