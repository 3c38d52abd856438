// Package checksum provides CRC checksums with conventionally formatted
// result types. CRC-32 uses the IEEE polynomial, CRC-32C the Castagnoli
// polynomial (hardware-accelerated where the platform supports it) and CRC-64
// the ECMA polynomial.
package checksum

import (
	"fmt"
	"hash/crc32"
	"hash/crc64"
)

// Checksum32 is a 32-bit checksum value. It formats as 0xXXXXXXXX.
type Checksum32 uint32

func (c Checksum32) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// Checksum64 is a 64-bit checksum value. It formats as 0xXXXXXXXXXXXXXXXX.
type Checksum64 uint64

func (c Checksum64) String() string {
	return fmt.Sprintf("0x%016X", uint64(c))
}

var (
	castagnoliTable = crc32.MakeTable(crc32.Castagnoli)
	ecmaTable       = crc64.MakeTable(crc64.ECMA)
)

// CRC32 returns the CRC-32 (IEEE) checksum of data.
func CRC32(data []byte) Checksum32 {
	return Checksum32(crc32.ChecksumIEEE(data))
}

// CRC32C returns the CRC-32C (Castagnoli) checksum of data.
func CRC32C(data []byte) Checksum32 {
	return Checksum32(crc32.Checksum(data, castagnoliTable))
}

// CRC64 returns the CRC-64 (ECMA) checksum of data.
func CRC64(data []byte) Checksum64 {
	return Checksum64(crc64.Checksum(data, ecmaTable))
}

// Update32 adds the bytes in data to the running CRC-32 (IEEE) checksum crc.
// Start from the zero value to checksum a stream incrementally.
func Update32(crc Checksum32, data []byte) Checksum32 {
	return Checksum32(crc32.Update(uint32(crc), crc32.IEEETable, data))
}

// Update32C adds the bytes in data to the running CRC-32C checksum crc.
func Update32C(crc Checksum32, data []byte) Checksum32 {
	return Checksum32(crc32.Update(uint32(crc), castagnoliTable, data))
}

// Update64 adds the bytes in data to the running CRC-64 (ECMA) checksum crc.
func Update64(crc Checksum64, data []byte) Checksum64 {
	return Checksum64(crc64.Update(uint64(crc), ecmaTable, data))
}
