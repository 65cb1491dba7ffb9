package app

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-cpio/pkg/cpio"
)

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeArchiveAccess = "ARCHIVE_ACCESS"
	ErrCodeCorrupt       = "CORRUPT_ARCHIVE"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeTimeout       = "TIMEOUT"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCode returns the code of the first CommonError in err's chain, or ""
func ErrorCode(err error) string {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// DecodeFailure describes where and why a scan stopped early
type DecodeFailure struct {
	Index  int    `json:"index" yaml:"index"`
	Offset int    `json:"offset" yaml:"offset"`
	Reason string `json:"reason" yaml:"reason"`
}

// NewDecodeFailure extracts a DecodeFailure from a Reader error. It returns
// nil when err is nil.
func NewDecodeFailure(err error) *DecodeFailure {
	if err == nil {
		return nil
	}

	var de *cpio.DecodeError
	if errors.As(err, &de) {
		return &DecodeFailure{Index: de.Index, Offset: de.Offset, Reason: de.Err.Error()}
	}
	return &DecodeFailure{Index: -1, Offset: -1, Reason: err.Error()}
}
