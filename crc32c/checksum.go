package crc32c

// Checksum computes CRC32C over data using the fastest implementation
// available on the running CPU. The wal package does not call it; it
// checksums records with Incremental.
func Checksum(data []byte) uint32 {
	return Hardware(data)
}
