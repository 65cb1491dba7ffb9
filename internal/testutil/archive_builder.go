// Package testutil builds cpio archives byte by byte for tests.
package testutil

import (
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-cpio/internal/types"
)

// File describes one archive member to encode. Fields a format cannot carry
// are ignored by that format's encoder.
type File struct {
	Name    string
	Mode    uint32
	Ino     uint32
	UID     uint32
	GID     uint32
	NLink   uint32
	MTime   uint64
	Content []byte

	Dev  uint32
	RDev uint32

	DevMajor  uint32
	DevMinor  uint32
	RDevMajor uint32
	RDevMinor uint32

	// Checksum overrides the computed crc checksum when set.
	Checksum *uint32
}

// Encoder appends the encoding of f to dst.
type Encoder func(dst []byte, f File) []byte

// Build encodes files followed by a trailer entry.
func Build(enc Encoder, files ...File) []byte {
	return enc(BuildWithoutTrailer(enc, files...), Trailer())
}

// BuildWithoutTrailer encodes files with no end-of-archive marker.
func BuildWithoutTrailer(enc Encoder, files ...File) []byte {
	var out []byte
	for _, f := range files {
		out = enc(out, f)
	}
	return out
}

// Trailer returns the end-of-archive entry.
func Trailer() File {
	return File{Name: types.TrailerName, NLink: 1}
}

// BinaryBigEndian encodes f in the old binary format, big-endian.
func BinaryBigEndian(dst []byte, f File) []byte {
	return appendBinary(dst, binary.BigEndian, f)
}

// BinaryLittleEndian encodes f in the old binary format, little-endian.
func BinaryLittleEndian(dst []byte, f File) []byte {
	return appendBinary(dst, binary.LittleEndian, f)
}

func appendBinary(dst []byte, order binary.AppendByteOrder, f File) []byte {
	namesize := len(f.Name) + 1
	size := uint32(len(f.Content))

	words := []uint16{
		types.BinaryMagic,
		uint16(f.Dev),
		uint16(f.Ino),
		uint16(f.Mode),
		uint16(f.UID),
		uint16(f.GID),
		uint16(f.NLink),
		uint16(f.RDev),
		uint16(f.MTime >> 16),
		uint16(f.MTime),
		uint16(namesize),
		uint16(size >> 16),
		uint16(size),
	}
	for _, w := range words {
		dst = order.AppendUint16(dst, w)
	}

	dst = append(dst, f.Name...)
	dst = append(dst, 0)
	if namesize%2 == 1 {
		dst = append(dst, 0)
	}

	dst = append(dst, f.Content...)
	if size%2 == 1 {
		dst = append(dst, 0)
	}
	return dst
}

// PortableASCII encodes f in the odc format.
func PortableASCII(dst []byte, f File) []byte {
	dst = append(dst, types.PortableASCIIMagic...)
	dst = fmt.Appendf(dst, "%06o%06o%06o%06o%06o%06o%06o%011o%06o%011o",
		f.Dev, f.Ino, f.Mode, f.UID, f.GID, f.NLink, f.RDev,
		f.MTime, len(f.Name)+1, len(f.Content))
	dst = append(dst, f.Name...)
	dst = append(dst, 0)
	return append(dst, f.Content...)
}

// NewASCII encodes f in the newc format.
func NewASCII(dst []byte, f File) []byte {
	return appendNewASCII(dst, types.NewASCIIMagic, f, 0)
}

// NewCRC encodes f in the crc format. The checksum is the byte sum of the
// content unless f.Checksum is set.
func NewCRC(dst []byte, f File) []byte {
	var sum uint32
	for _, b := range f.Content {
		sum += uint32(b)
	}
	if f.Checksum != nil {
		sum = *f.Checksum
	}
	return appendNewASCII(dst, types.NewCRCMagic, f, sum)
}

func appendNewASCII(dst []byte, magic string, f File, check uint32) []byte {
	start := len(dst)

	dst = append(dst, magic...)
	dst = fmt.Appendf(dst, "%08X%08X%08X%08X%08X%08X%08X%08X%08X%08X%08X%08X%08X",
		f.Ino, f.Mode, f.UID, f.GID, f.NLink, uint32(f.MTime), len(f.Content),
		f.DevMajor, f.DevMinor, f.RDevMajor, f.RDevMinor, len(f.Name)+1, check)
	dst = append(dst, f.Name...)
	dst = append(dst, 0)
	dst = pad4(dst, start)

	dst = append(dst, f.Content...)
	return pad4(dst, start)
}

func pad4(dst []byte, start int) []byte {
	for (len(dst)-start)%types.NewASCIIAlignment != 0 {
		dst = append(dst, 0)
	}
	return dst
}

// Uint32 returns a pointer to v, for File.Checksum.
func Uint32(v uint32) *uint32 {
	return &v
}
