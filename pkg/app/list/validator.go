package list

import (
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"

	"github.com/deploymenttheory/go-cpio/pkg/app"
)

// EntryTypes are the accepted values of Request.Type
var EntryTypes = []string{"file", "dir", "symlink", "chardev", "blockdev", "fifo", "socket"}

// Validate validates a listing request
func (r *Request) Validate() error {
	if r.ArchivePath == "" {
		return app.NewError(app.ErrCodeInvalidInput, "archive path is required", nil)
	}

	if r.NamePattern != "" {
		if _, err := glob.Compile(r.NamePattern, '/'); err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid name pattern", err)
		}
	}

	if r.Type != "" && !slices.Contains(EntryTypes, r.Type) {
		return app.NewError(app.ErrCodeInvalidInput, "unknown entry type "+r.Type, nil)
	}

	minSize, maxSize, err := r.sizeBounds()
	if err != nil {
		return err
	}
	if maxSize > 0 && minSize > maxSize {
		return app.NewError(app.ErrCodeInvalidInput, "min-size exceeds max-size", nil)
	}

	if r.Limit < 0 {
		return app.NewError(app.ErrCodeInvalidInput, "limit must not be negative", nil)
	}

	return nil
}

// sizeBounds parses MinSize and MaxSize, such as "10KB" or "1 MiB"
func (r *Request) sizeBounds() (minSize, maxSize int, err error) {
	parse := func(flag, value string) (int, error) {
		if value == "" {
			return 0, nil
		}
		n, err := humanize.ParseBytes(value)
		if err != nil {
			return 0, app.NewError(app.ErrCodeInvalidInput, "invalid "+flag+" format", err)
		}
		if n > uint64(maxInt) {
			return 0, app.NewError(app.ErrCodeInvalidInput, flag+" is too large", nil)
		}
		return int(n), nil
	}

	if minSize, err = parse("min-size", r.MinSize); err != nil {
		return 0, 0, err
	}
	if maxSize, err = parse("max-size", r.MaxSize); err != nil {
		return 0, 0, err
	}
	return minSize, maxSize, nil
}

const maxInt = int(^uint(0) >> 1)
