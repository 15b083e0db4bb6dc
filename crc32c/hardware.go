package crc32c

import (
	"hash/crc32"

	"golang.org/x/sys/cpu"
)

// castagnoliTable is the standard library's own Castagnoli table. On amd64
// and arm64 the standard library dispatches crc32.Checksum against this
// table to the CPU's native CRC32C instruction (SSE4.2 / the ARMv8 CRC
// extension) when available; see hardwareAvailable below for why this
// package probes the feature itself rather than trusting that dispatch
// blindly.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// hardwareAvailable records, once at package init, whether the running CPU
// advertises the CRC32C instruction this package wants to use.
var hardwareAvailable = cpu.X86.HasSSE42 || cpu.ARM64.HasCRC32

// HardwareAvailable reports whether Hardware will use the CPU's native
// CRC32C instruction rather than falling back to Slicing32.
func HardwareAvailable() bool {
	return hardwareAvailable
}

// Hardware computes CRC32C using the CPU's native CRC32C instruction when
// the processor advertises support, and falls through to Slicing32
// otherwise.
func Hardware(data []byte) uint32 {
	if !hardwareAvailable {
		return Slicing32(data)
	}
	return crc32.Checksum(data, castagnoliTable)
}
