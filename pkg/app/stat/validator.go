package stat

import "github.com/deploymenttheory/go-cpio/pkg/app"

// Validate validates a summary request
func (r *Request) Validate() error {
	if r.ArchivePath == "" {
		return app.NewError(app.ErrCodeInvalidInput, "archive path is required", nil)
	}
	return nil
}
