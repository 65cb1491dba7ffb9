package cpio

import (
	"errors"
	"iter"

	"github.com/deploymenttheory/go-cpio/internal/parsers/headers"
	"github.com/deploymenttheory/go-cpio/internal/types"
)

// IterFiles returns the entries of the archive in data, in order.
//
// Iteration ends at the trailer entry, at the end of data, or at the first
// entry that cannot be decoded; these cases are not distinguished. The
// trailer itself is never yielded. Calling IterFiles again starts over.
func IterFiles(data []byte) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		r := NewReader(data)
		for entry, ok := r.Next(); ok; entry, ok = r.Next() {
			if !yield(entry) {
				return
			}
		}
	}
}

// Decode parses the entry at the start of data and returns it with the
// unconsumed tail. The trailer entry is reported as ErrTrailer.
func Decode(data []byte) (Entry, []byte, error) {
	return headers.Decode(data)
}

// Reader steps through the entries of an in-memory archive.
//
// A Reader is not safe for concurrent use, but any number of Readers may
// share the same buffer.
type Reader struct {
	rest   []byte
	offset int
	index  int
	err    error
}

// NewReader creates a Reader positioned at the first entry of data
func NewReader(data []byte) *Reader {
	return &Reader{rest: data}
}

// Next decodes the next entry. It returns false once the archive is
// exhausted, the trailer is reached, or an entry fails to decode; after that
// it keeps returning false.
func (r *Reader) Next() (Entry, bool) {
	if len(r.rest) == 0 {
		return Entry{}, false
	}

	entry, rest, err := headers.Decode(r.rest)
	if err != nil {
		if !errors.Is(err, types.ErrTrailer) {
			r.err = &DecodeError{Offset: r.offset, Index: r.index, Err: err}
		}
		r.rest = nil
		return Entry{}, false
	}

	r.offset += len(r.rest) - len(rest)
	r.index++
	r.rest = rest
	return entry, true
}

// Err returns the error that stopped the Reader, or nil when it stopped at
// the trailer or the end of the buffer.
func (r *Reader) Err() error {
	return r.err
}

// Offset returns the position of the next header from the start of the buffer
func (r *Reader) Offset() int {
	return r.offset
}

// Count returns the number of entries returned so far
func (r *Reader) Count() int {
	return r.index
}
