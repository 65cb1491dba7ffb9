package verify

import "github.com/deploymenttheory/go-cpio/pkg/app"

// Request represents an archive verification request
type Request struct {
	ArchivePath string
	// RequireTrailer fails archives that end without a TRAILER!!! entry
	RequireTrailer bool
}

// Response represents verification results
type Response struct {
	Archive      string             `json:"archive" yaml:"archive"`
	OK           bool               `json:"ok" yaml:"ok"`
	Entries      int                `json:"entries" yaml:"entries"`
	ArchiveSize  int                `json:"archive_size" yaml:"archive_size"`
	EndOffset    int                `json:"end_offset" yaml:"end_offset"`
	TrailerFound bool               `json:"trailer_found" yaml:"trailer_found"`
	Failure      *app.DecodeFailure `json:"failure,omitempty" yaml:"failure,omitempty"`
}
