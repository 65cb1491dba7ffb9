package headers

import (
	"bytes"
	"fmt"
	"math"

	"github.com/deploymenttheory/go-cpio/internal/parsers/cursor"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// toInt converts a declared header size to an int, failing when the value
// does not fit on the current platform.
func toInt(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", types.ErrSizeOverflow, v)
	}
	return int(v), nil
}

// byteSum returns the wrapping 32-bit sum of data, the crc format's checksum
func byteSum(data []byte) uint32 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return sum
}

// matchMagic consumes an ASCII magic string. A buffer that ends inside a
// matching prefix is truncated; any other difference is a bad magic.
func matchMagic(c *cursor.ByteCursor, magic string) error {
	n := min(len(magic), len(c.Remaining()))
	if !bytes.Equal(c.Remaining()[:n], []byte(magic[:n])) {
		return types.ErrBadMagic
	}
	if n < len(magic) {
		return types.ErrTruncated
	}
	c.Skip(n)
	return nil
}
