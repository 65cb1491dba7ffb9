package types

import "errors"

// Decode errors. A decoder returns exactly one of these, possibly wrapped with
// more context, whenever it declines to produce an entry.
var (
	// ErrBadMagic is returned when the header does not start with the decoder's magic.
	ErrBadMagic = errors.New("bad header magic")

	// ErrTruncated is returned when a field extends past the end of the buffer.
	ErrTruncated = errors.New("truncated archive")

	// ErrInvalidText is returned when a name field is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 in header field")

	// ErrInvalidNumber is returned when an ASCII numeric field holds non-digit text.
	ErrInvalidNumber = errors.New("invalid numeric header field")

	// ErrEmptyName is returned when the header declares a zero name size.
	ErrEmptyName = errors.New("zero name size")

	// ErrChecksumMismatch is returned when crc content does not sum to the header checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrSizeOverflow is returned when a declared size does not fit in an int.
	ErrSizeOverflow = errors.New("size overflows int")

	// ErrUnknownFormat is returned when no decoder recognises the header magic.
	ErrUnknownFormat = errors.New("unknown archive format")

	// ErrTrailer is returned when the decoded entry is the end-of-archive marker.
	ErrTrailer = errors.New("end of archive")
)
