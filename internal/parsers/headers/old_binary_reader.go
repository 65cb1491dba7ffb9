package headers

import (
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-cpio/internal/parsers/cursor"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// OldBinaryDecoder decodes the old binary format in either byte order.
//
// Layout (all fields 16-bit words in the byte order of the writing host):
//
//	magic dev ino mode uid gid nlink rdev mtime[2] namesize filesize[2]
//
// The name is padded to an even length and so is the content.
type OldBinaryDecoder struct{}

// NewOldBinaryDecoder creates a decoder for the old binary format
func NewOldBinaryDecoder() OldBinaryDecoder {
	return OldBinaryDecoder{}
}

func (OldBinaryDecoder) Format() types.Format {
	return types.FormatBinaryLittleEndian
}

// Decode parses one old binary entry. The magic is tried big-endian first,
// and the order that matches is used for every following field.
func (OldBinaryDecoder) Decode(data []byte) (types.Entry, []byte, error) {
	c := cursor.New(data)

	magic, err := c.Bytes(2)
	if err != nil {
		if len(data) == 1 && data[0] != byte(types.BinaryMagic>>8) && data[0] != byte(types.BinaryMagic&0xff) {
			return types.Entry{}, nil, types.ErrBadMagic
		}
		return types.Entry{}, nil, err
	}

	var order binary.ByteOrder
	hdr := types.EntryHeader{}
	switch {
	case binary.BigEndian.Uint16(magic) == types.BinaryMagic:
		order, hdr.Format = binary.BigEndian, types.FormatBinaryBigEndian
	case binary.LittleEndian.Uint16(magic) == types.BinaryMagic:
		order, hdr.Format = binary.LittleEndian, types.FormatBinaryLittleEndian
	default:
		return types.Entry{}, nil, types.ErrBadMagic
	}

	var words [12]uint16
	for i := range words {
		if words[i], err = c.Uint16(order); err != nil {
			return types.Entry{}, nil, fmt.Errorf("failed to read binary header: %w", err)
		}
	}

	hdr.Dev = uint32(words[0])
	hdr.Ino = uint32(words[1])
	hdr.Mode = types.ModeFromBits(uint32(words[2]))
	hdr.UID = uint32(words[3])
	hdr.GID = uint32(words[4])
	hdr.NLink = uint32(words[5])
	hdr.RDev = uint32(words[6])
	hdr.MTime = uint64(words[7])<<16 | uint64(words[8])
	namesize := int(words[9])
	filesize := uint32(words[10])<<16 | uint32(words[11])

	if namesize == 0 {
		return types.Entry{}, nil, types.ErrEmptyName
	}

	name, err := c.Text(namesize - 1)
	if err != nil {
		return types.Entry{}, nil, fmt.Errorf("failed to read entry name: %w", err)
	}

	// NUL terminator, plus one pad byte when the name field ends on an odd offset.
	c.Skip(namesize%2 + 1)

	size, err := toInt(uint64(filesize))
	if err != nil {
		return types.Entry{}, nil, err
	}

	file, err := c.Bytes(size)
	if err != nil {
		return types.Entry{}, nil, fmt.Errorf("failed to read content of %q: %w", name, err)
	}

	c.Skip(size % 2)

	return types.NewEntry(hdr, name, file), c.Remaining(), nil
}
