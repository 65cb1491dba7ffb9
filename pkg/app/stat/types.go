package stat

import (
	"github.com/deploymenttheory/go-cpio/pkg/app"
	"github.com/deploymenttheory/go-cpio/pkg/services"
)

// Request represents an archive summary request
type Request struct {
	ArchivePath string
	// EntryName, when set, also looks up and describes one member
	EntryName string
}

// Response represents an archive summary
type Response struct {
	Archive     string              `json:"archive" yaml:"archive"`
	Compression string              `json:"compression" yaml:"compression"`
	StoredSize  int                 `json:"stored_size" yaml:"stored_size"`
	Summary     services.Summary    `json:"summary" yaml:"summary"`
	Entry       *services.EntryInfo `json:"entry,omitempty" yaml:"entry,omitempty"`
	Failure     *app.DecodeFailure  `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// TrailingBytes returns the number of bytes after the last decoded entry,
// which covers the trailer and any block padding
func (r *Response) TrailingBytes() int {
	return r.Summary.ArchiveSize - r.Summary.EndOffset
}
