package types

// Format identifies the on-disk header encoding of a cpio entry.
type Format int

const (
	// FormatUnknown is the zero value and never produced by a decoder.
	FormatUnknown Format = iota

	// FormatBinaryBigEndian is the old binary format written on a big-endian host.
	FormatBinaryBigEndian

	// FormatBinaryLittleEndian is the old binary format written on a little-endian host.
	FormatBinaryLittleEndian

	// FormatPortableASCII is the POSIX.1 portable format, also known as "odc".
	FormatPortableASCII

	// FormatNewASCII is the SVR4 format without checksum, also known as "newc".
	FormatNewASCII

	// FormatNewCRC is the SVR4 format with a content checksum, also known as "crc".
	FormatNewCRC
)

// Magic numbers and header sizes.
// Reference: cpio(5)
const (
	// BinaryMagic is the 16-bit magic of the old binary format.
	BinaryMagic uint16 = 0o070707

	// BinaryHeaderSize is the size of an old binary header without the name.
	BinaryHeaderSize = 26

	// PortableASCIIMagic is the magic of the odc format.
	PortableASCIIMagic = "070707"

	// PortableASCIIHeaderSize is the size of an odc header without the name.
	PortableASCIIHeaderSize = 76

	// NewASCIIMagic is the magic of the newc format.
	NewASCIIMagic = "070701"

	// NewCRCMagic is the magic of the crc format.
	NewCRCMagic = "070702"

	// NewASCIIHeaderSize is the size of a newc or crc header without the name.
	NewASCIIHeaderSize = 110

	// NewASCIIAlignment is the boundary newc and crc pad name and content to.
	NewASCIIAlignment = 4

	// TrailerName is the name of the entry that marks the end of an archive.
	TrailerName = "TRAILER!!!"
)

// String returns the name GNU cpio uses for the format.
func (f Format) String() string {
	switch f {
	case FormatBinaryBigEndian:
		return "bin-be"
	case FormatBinaryLittleEndian:
		return "bin-le"
	case FormatPortableASCII:
		return "odc"
	case FormatNewASCII:
		return "newc"
	case FormatNewCRC:
		return "crc"
	default:
		return "unknown"
	}
}

// HasSplitDevices reports whether headers of this format carry device numbers
// as separate major and minor fields.
func (f Format) HasSplitDevices() bool {
	return f == FormatNewASCII || f == FormatNewCRC
}
