package headers

import (
	"errors"

	"github.com/deploymenttheory/go-cpio/internal/interfaces"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// decoders are tried in this order against the same start position.
var decoders = []interfaces.HeaderDecoder{
	NewOldBinaryDecoder(),
	NewPortableASCIIDecoder(),
	NewNewASCIIDecoder(),
}

// Decoders returns the header decoders in the order Decode tries them
func Decoders() []interfaces.HeaderDecoder {
	out := make([]interfaces.HeaderDecoder, len(decoders))
	copy(out, decoders)
	return out
}

// Decode parses the entry at the start of data with the first decoder that
// accepts it and returns the entry together with the unconsumed tail.
//
// When every decoder declines, the error is the first one that is not
// types.ErrBadMagic, or types.ErrUnknownFormat when no magic matched. The
// end-of-archive marker is reported as types.ErrTrailer.
func Decode(data []byte) (types.Entry, []byte, error) {
	var firstErr error

	for _, d := range decoders {
		entry, rest, err := d.Decode(data)
		if err == nil {
			if entry.IsTrailer() {
				return types.Entry{}, nil, types.ErrTrailer
			}
			return entry, rest, nil
		}
		if firstErr == nil && !errors.Is(err, types.ErrBadMagic) {
			firstErr = err
		}
	}

	if firstErr == nil {
		firstErr = types.ErrUnknownFormat
	}
	return types.Entry{}, nil, firstErr
}
