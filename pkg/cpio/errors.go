package cpio

import (
	"fmt"

	"github.com/deploymenttheory/go-cpio/internal/types"
)

// Errors re-exported from types.
var (
	// ErrBadMagic is returned when a header does not start with a known magic.
	ErrBadMagic = types.ErrBadMagic

	// ErrTruncated is returned when a field extends past the end of the buffer.
	ErrTruncated = types.ErrTruncated

	// ErrInvalidText is returned when an entry name is not valid UTF-8.
	ErrInvalidText = types.ErrInvalidText

	// ErrInvalidNumber is returned when an ASCII numeric field holds non-digit text.
	ErrInvalidNumber = types.ErrInvalidNumber

	// ErrEmptyName is returned when a header declares a zero name size.
	ErrEmptyName = types.ErrEmptyName

	// ErrChecksumMismatch is returned when crc content does not match its checksum.
	ErrChecksumMismatch = types.ErrChecksumMismatch

	// ErrSizeOverflow is returned when a declared size does not fit in an int.
	ErrSizeOverflow = types.ErrSizeOverflow

	// ErrUnknownFormat is returned when no decoder recognises the header.
	ErrUnknownFormat = types.ErrUnknownFormat

	// ErrTrailer is returned by Decode for the end-of-archive entry.
	ErrTrailer = types.ErrTrailer
)

// DecodeError reports the entry that stopped a Reader.
type DecodeError struct {
	// Offset is the position of the failed header from the start of the buffer.
	Offset int
	// Index is the zero-based number of the failed entry.
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpio: entry %d at offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
