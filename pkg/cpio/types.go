package cpio

import (
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// Entry is a read-only view of one archive member. The slices it returns
// alias the archive buffer.
type Entry = types.Entry

// Mode holds the permission and file type bits of an entry.
type Mode = types.Mode

// Format identifies the header encoding an entry was decoded from.
type Format = types.Format

// Mode bits re-exported from types.
const (
	ModeUserExecutable  = types.ModeUserExecutable
	ModeUserWritable    = types.ModeUserWritable
	ModeUserReadable    = types.ModeUserReadable
	ModeGroupExecutable = types.ModeGroupExecutable
	ModeGroupWritable   = types.ModeGroupWritable
	ModeGroupReadable   = types.ModeGroupReadable
	ModeWorldExecutable = types.ModeWorldExecutable
	ModeWorldWritable   = types.ModeWorldWritable
	ModeWorldReadable   = types.ModeWorldReadable
	ModeSticky          = types.ModeSticky
	ModeSGID            = types.ModeSGID
	ModeSUID            = types.ModeSUID
	ModePerm            = types.ModePerm

	ModeType        = types.ModeType
	ModeFIFO        = types.ModeFIFO
	ModeCharDevice  = types.ModeCharDevice
	ModeDir         = types.ModeDir
	ModeBlockDevice = types.ModeBlockDevice
	ModeRegular     = types.ModeRegular
	ModeSymlink     = types.ModeSymlink
	ModeSocket      = types.ModeSocket
)

// Formats re-exported from types.
const (
	FormatBinaryBigEndian    = types.FormatBinaryBigEndian
	FormatBinaryLittleEndian = types.FormatBinaryLittleEndian
	FormatPortableASCII      = types.FormatPortableASCII
	FormatNewASCII           = types.FormatNewASCII
	FormatNewCRC             = types.FormatNewCRC
)

// TrailerName is the name of the end-of-archive entry.
const TrailerName = types.TrailerName

// ModeFromBits builds a Mode from raw header bits. It never fails.
func ModeFromBits(bits uint32) Mode {
	return types.ModeFromBits(bits)
}
