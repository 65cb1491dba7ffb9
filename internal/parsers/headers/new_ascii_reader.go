package headers

import (
	"fmt"

	"github.com/deploymenttheory/go-cpio/internal/parsers/cursor"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// NewASCIIDecoder decodes the SVR4 formats, "newc" (070701) and its
// checksummed variant "crc" (070702).
//
// Thirteen 8-digit hex fields follow the magic. The header plus name, and the
// content, are each padded to a multiple of four bytes.
type NewASCIIDecoder struct{}

// NewNewASCIIDecoder creates a decoder for the newc and crc formats
func NewNewASCIIDecoder() NewASCIIDecoder {
	return NewASCIIDecoder{}
}

func (NewASCIIDecoder) Format() types.Format {
	return types.FormatNewASCII
}

func (NewASCIIDecoder) Decode(data []byte) (types.Entry, []byte, error) {
	c := cursor.New(data)

	// Both magics share the first five characters.
	prefix := types.NewASCIIMagic[:5]
	if err := matchMagic(c, prefix); err != nil {
		return types.Entry{}, nil, err
	}

	variant, err := c.Byte()
	if err != nil {
		return types.Entry{}, nil, err
	}

	hdr := types.EntryHeader{}
	switch variant {
	case types.NewASCIIMagic[5]:
		hdr.Format = types.FormatNewASCII
	case types.NewCRCMagic[5]:
		hdr.Format = types.FormatNewCRC
	default:
		return types.Entry{}, nil, types.ErrBadMagic
	}

	var mode, mtime, filesize, namesize, check uint32
	fields := []*uint32{
		&hdr.Ino,
		&mode,
		&hdr.UID,
		&hdr.GID,
		&hdr.NLink,
		&mtime,
		&filesize,
		&hdr.DevMajor,
		&hdr.DevMinor,
		&hdr.RDevMajor,
		&hdr.RDevMinor,
		&namesize,
		&check,
	}
	for _, dst := range fields {
		if *dst, err = c.Hex32(); err != nil {
			return types.Entry{}, nil, fmt.Errorf("failed to read %s header: %w", hdr.Format, err)
		}
	}
	hdr.Mode = types.ModeFromBits(mode)
	hdr.MTime = uint64(mtime)

	if namesize == 0 {
		return types.Entry{}, nil, types.ErrEmptyName
	}

	nameLen, err := toInt(uint64(namesize) - 1)
	if err != nil {
		return types.Entry{}, nil, err
	}

	name, err := c.Text(nameLen)
	if err != nil {
		return types.Entry{}, nil, fmt.Errorf("failed to read entry name: %w", err)
	}

	// NUL terminator, then pad header and name to the alignment boundary.
	c.Skip(1)
	c.Align(types.NewASCIIAlignment)

	size, err := toInt(uint64(filesize))
	if err != nil {
		return types.Entry{}, nil, err
	}

	file, err := c.Bytes(size)
	if err != nil {
		return types.Entry{}, nil, fmt.Errorf("failed to read content of %q: %w", name, err)
	}

	// GNU cpio does not verify the checksum of symbolic links. Any type field
	// carrying the symlink bits is treated the same way.
	if hdr.Format == types.FormatNewCRC && !hdr.Mode.Contains(types.ModeSymlink) {
		if sum := byteSum(file); sum != check {
			return types.Entry{}, nil, fmt.Errorf("%w: %q: header %08x, content %08x",
				types.ErrChecksumMismatch, name, check, sum)
		}
	}

	c.Align(types.NewASCIIAlignment)

	return types.NewEntry(hdr, name, file), c.Remaining(), nil
}

