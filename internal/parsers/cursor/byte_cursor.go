package cursor

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/deploymenttheory/go-cpio/internal/types"
)

// ByteCursor reads fixed-size header fields sequentially from a borrowed
// byte slice. It never copies or modifies the slice.
type ByteCursor struct {
	data   []byte
	offset int
}

// New creates a cursor positioned at the start of data
func New(data []byte) *ByteCursor {
	return &ByteCursor{data: data}
}

// Offset returns the number of bytes consumed since the cursor was created,
// including skipped bytes.
func (c *ByteCursor) Offset() int {
	return c.offset
}

// Remaining returns the unconsumed tail of the buffer
func (c *ByteCursor) Remaining() []byte {
	return c.data
}

// Byte reads a single byte
func (c *ByteCursor) Byte() (byte, error) {
	if len(c.data) == 0 {
		return 0, types.ErrTruncated
	}
	b := c.data[0]
	c.Skip(1)
	return b, nil
}

// Bytes returns the next n bytes as a sub-slice of the buffer
func (c *ByteCursor) Bytes(n int) ([]byte, error) {
	if n < 0 || n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", types.ErrTruncated, n, len(c.data))
	}
	b := c.data[:n:n]
	c.Skip(n)
	return b, nil
}

// Text returns the next n bytes, which must be valid UTF-8
func (c *ByteCursor) Text(n int) ([]byte, error) {
	b, err := c.Bytes(n)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, types.ErrInvalidText
	}
	return b, nil
}

// Uint16 reads a 16-bit word in the given byte order
func (c *ByteCursor) Uint16(order binary.ByteOrder) (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

// Octal32 parses the next n bytes as base-8 ASCII text
func (c *ByteCursor) Octal32(n int) (uint32, error) {
	v, err := c.number(n, 8, 32)
	return uint32(v), err
}

// Octal64 parses the next n bytes as base-8 ASCII text
func (c *ByteCursor) Octal64(n int) (uint64, error) {
	return c.number(n, 8, 64)
}

// Hex32 parses the next 8 bytes as base-16 ASCII text
func (c *ByteCursor) Hex32() (uint32, error) {
	v, err := c.number(8, 16, 32)
	return uint32(v), err
}

func (c *ByteCursor) number(n, base, bitSize int) (uint64, error) {
	b, err := c.Bytes(n)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(string(b), base, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidNumber, b)
	}
	return v, nil
}

// Skip advances n bytes without inspecting them. Skipping past the end leaves
// the cursor at the end.
func (c *ByteCursor) Skip(n int) {
	if n <= 0 {
		return
	}
	c.offset += n
	if n > len(c.data) {
		n = len(c.data)
	}
	c.data = c.data[n:]
}

// Align advances to the next multiple of k bytes from the cursor start
func (c *ByteCursor) Align(k int) {
	if k <= 0 {
		return
	}
	c.Skip((k - c.offset%k) % k)
}
