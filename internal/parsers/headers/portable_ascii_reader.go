package headers

import (
	"fmt"

	"github.com/deploymenttheory/go-cpio/internal/parsers/cursor"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// PortableASCIIDecoder decodes the POSIX.1 portable format ("odc").
//
// Every numeric field is zero-padded octal text: six digits each, except
// mtime and filesize which take eleven. Nothing in this format is padded.
type PortableASCIIDecoder struct{}

// NewPortableASCIIDecoder creates a decoder for the odc format
func NewPortableASCIIDecoder() PortableASCIIDecoder {
	return PortableASCIIDecoder{}
}

func (PortableASCIIDecoder) Format() types.Format {
	return types.FormatPortableASCII
}

func (PortableASCIIDecoder) Decode(data []byte) (types.Entry, []byte, error) {
	c := cursor.New(data)

	if err := matchMagic(c, types.PortableASCIIMagic); err != nil {
		return types.Entry{}, nil, err
	}

	hdr := types.EntryHeader{Format: types.FormatPortableASCII}
	var mode, namesize uint32
	var filesize uint64
	var err error

	fields := []struct {
		dst32 *uint32
		dst64 *uint64
		width int
	}{
		{dst32: &hdr.Dev, width: 6},
		{dst32: &hdr.Ino, width: 6},
		{dst32: &mode, width: 6},
		{dst32: &hdr.UID, width: 6},
		{dst32: &hdr.GID, width: 6},
		{dst32: &hdr.NLink, width: 6},
		{dst32: &hdr.RDev, width: 6},
		{dst64: &hdr.MTime, width: 11},
		{dst32: &namesize, width: 6},
		{dst64: &filesize, width: 11},
	}

	for _, f := range fields {
		if f.dst64 != nil {
			*f.dst64, err = c.Octal64(f.width)
		} else {
			*f.dst32, err = c.Octal32(f.width)
		}
		if err != nil {
			return types.Entry{}, nil, fmt.Errorf("failed to read odc header: %w", err)
		}
	}
	hdr.Mode = types.ModeFromBits(mode)

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

	// NUL terminator.
	c.Skip(1)

	size, err := toInt(filesize)
	if err != nil {
		return types.Entry{}, nil, err
	}

	file, err := c.Bytes(size)
	if err != nil {
		return types.Entry{}, nil, fmt.Errorf("failed to read content of %q: %w", name, err)
	}

	return types.NewEntry(hdr, name, file), c.Remaining(), nil
}
