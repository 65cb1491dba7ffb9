// File: internal/interfaces/headers.go
package interfaces

import (
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// HeaderDecoder interprets the head of a buffer as one cpio header encoding
type HeaderDecoder interface {
	// Format returns the encoding this decoder recognises. For decoders that
	// accept more than one variant it returns the primary one.
	Format() types.Format

	// Decode parses one entry from the start of data and returns it together
	// with the unconsumed tail. It returns types.ErrBadMagic when data does not
	// start with this decoder's magic, and another types error when the magic
	// matched but the entry is malformed or truncated.
	Decode(data []byte) (types.Entry, []byte, error)
}
