package list

import (
	"github.com/deploymenttheory/go-cpio/pkg/app"
	"github.com/deploymenttheory/go-cpio/pkg/services"
)

// Handle processes a listing request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}
	minSize, maxSize, _ := req.sizeBounds()

	ctx, cancel := ctx.WithTimeout(ctx.DefaultTimeout)
	defer cancel()

	log := ctx.Logger(req.ArchivePath)

	// 2. Load the archive
	archive, err := ctx.Archives.Load(ctx, req.ArchivePath)
	if err != nil {
		if ierr := ctx.Interrupted("archive load", err); ierr != nil {
			return nil, ierr
		}
		return nil, app.NewError(app.ErrCodeArchiveAccess, "cannot open archive", err)
	}
	log.WithField("compression", archive.Compression).WithField("bytes", len(archive.Data)).Debug("archive loaded")

	// 3. Scan entries
	result, err := ctx.Archives.List(ctx, archive.Data, services.Filter{
		NamePattern: req.NamePattern,
		Type:        req.Type,
		MinSize:     minSize,
		MaxSize:     maxSize,
		Limit:       req.Limit,
	})
	if err != nil {
		if ierr := ctx.Interrupted("listing", err); ierr != nil {
			return nil, ierr
		}
		return nil, app.NewError(app.ErrCodeInvalidInput, "listing failed", err)
	}

	response := &Response{
		Archive:   req.ArchivePath,
		Entries:   result.Entries,
		Scanned:   result.Scanned,
		Truncated: result.Limited,
		Failure:   app.NewDecodeFailure(result.Err),
	}

	if result.Err != nil {
		if ctx.Strict {
			return response, app.NewError(app.ErrCodeCorrupt, "archive does not decode cleanly", result.Err)
		}
		log.WithField("offset", response.Failure.Offset).Warnf("listing stopped early: %s", response.Failure.Reason)
	}

	log.WithField("matched", len(response.Entries)).WithField("scanned", response.Scanned).Debug("listing complete")
	return response, nil
}
