package stat

import (
	"errors"

	"github.com/deploymenttheory/go-cpio/pkg/app"
	"github.com/deploymenttheory/go-cpio/pkg/services"
)

// Handle processes a summary request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := ctx.WithTimeout(ctx.DefaultTimeout)
	defer cancel()

	log := ctx.Logger(req.ArchivePath)

	archive, err := ctx.Archives.Load(ctx, req.ArchivePath)
	if err != nil {
		if ierr := ctx.Interrupted("archive load", err); ierr != nil {
			return nil, ierr
		}
		return nil, app.NewError(app.ErrCodeArchiveAccess, "cannot open archive", err)
	}

	summary, err := ctx.Archives.Summarize(ctx, archive.Data)
	if err != nil {
		if ierr := ctx.Interrupted("summary", err); ierr != nil {
			return nil, ierr
		}
		return nil, err
	}

	response := &Response{
		Archive:     req.ArchivePath,
		Compression: archive.Compression,
		StoredSize:  archive.StoredSize,
		Summary:     summary,
		Failure:     app.NewDecodeFailure(summary.Err),
	}

	if summary.Err != nil {
		if ctx.Strict {
			return response, app.NewError(app.ErrCodeCorrupt, "archive does not decode cleanly", summary.Err)
		}
		log.WithField("offset", response.Failure.Offset).Warnf("scan stopped early: %s", response.Failure.Reason)
	}

	if req.EntryName != "" {
		info, err := ctx.Archives.Find(ctx, archive.Data, req.EntryName)
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			return nil, app.NewError(app.ErrCodeNotFound, "no such entry", err)
		case err != nil:
			if ierr := ctx.Interrupted("entry lookup", err); ierr != nil {
				return nil, ierr
			}
			return nil, err
		}
		response.Entry = &info
	}

	log.WithField("entries", summary.Entries).Debug("summary complete")
	return response, nil
}
