// Package crc32c computes the CRC32C (Castagnoli) checksum used to protect
// every record in the wal package.
//
// It ships several interchangeable implementations of the same function —
// a bit-serial reference, a single-table byte-at-a-time version, slicing-by-
// 8/16/32, and a CPU-feature-gated hardware path — plus an incremental
// (streaming) variant. All of them must agree on every input; that
// agreement is the load-bearing property exercised by this package's tests.
package crc32c

//go:generate go run ../cmd/crc32ctablegen
