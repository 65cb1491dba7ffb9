package list

import (
	"github.com/deploymenttheory/go-cpio/pkg/app"
	"github.com/deploymenttheory/go-cpio/pkg/services"
)

// Request represents an archive listing request
type Request struct {
	ArchivePath string

	// Selection criteria
	NamePattern string
	Type        string
	MinSize     string
	MaxSize     string
	Limit       int
}

// Response represents listing results
type Response struct {
	Archive   string               `json:"archive" yaml:"archive"`
	Entries   []services.EntryInfo `json:"entries" yaml:"entries"`
	Scanned   int                  `json:"scanned" yaml:"scanned"`
	Truncated bool                 `json:"truncated" yaml:"truncated"`
	Failure   *app.DecodeFailure   `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// TotalSize returns the summed content length of the listed entries
func (r *Response) TotalSize() int64 {
	var total int64
	for _, e := range r.Entries {
		total += int64(e.Size)
	}
	return total
}
