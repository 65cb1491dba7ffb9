package verify

import (
	"errors"

	"github.com/deploymenttheory/go-cpio/pkg/app"
)

// ErrMissingTrailer reports an archive that ends without its trailer entry
var ErrMissingTrailer = errors.New("archive ends without a trailer entry")

// Handle decodes every entry of an archive. The response is always returned
// once the archive is loaded; the error is a CORRUPT_ARCHIVE CommonError when
// verification fails.
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
		// Summarize only fails when ctx ends
		return nil, app.NewError(app.ErrCodeTimeout, "verification interrupted", err)
	}

	// A clean stop with bytes left over can only be the trailer
	response := &Response{
		Archive:      req.ArchivePath,
		Entries:      summary.Entries,
		ArchiveSize:  summary.ArchiveSize,
		EndOffset:    summary.EndOffset,
		TrailerFound: summary.Clean && summary.EndOffset < summary.ArchiveSize,
		Failure:      app.NewDecodeFailure(summary.Err),
	}

	switch {
	case summary.Err != nil:
		log.WithField("offset", response.Failure.Offset).Error(response.Failure.Reason)
		return response, app.NewError(app.ErrCodeCorrupt, "verification failed", summary.Err)

	case !response.TrailerFound && (req.RequireTrailer || ctx.Strict):
		log.Error(ErrMissingTrailer)
		return response, app.NewError(app.ErrCodeCorrupt, "verification failed", ErrMissingTrailer)

	case !response.TrailerFound:
		log.Warn(ErrMissingTrailer)
	}

	response.OK = true
	log.WithField("entries", response.Entries).Info("archive verified")
	return response, nil
}
