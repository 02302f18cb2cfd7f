package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrIngestion            = fmt.Errorf("ingestion failed")
	ErrMissingColumn        = fmt.Errorf("%w: required column is missing", ErrIngestion)
	ErrEmptyVocabulary      = fmt.Errorf("no word reached the minimum count")
	ErrMissingFeatureColumn = fmt.Errorf("feature column is missing")
	ErrAssignmentMismatch   = fmt.Errorf("assignments do not match comments")
	ErrInvalidClusterCount  = fmt.Errorf("cluster count must be positive")
	ErrReportNotFound       = fmt.Errorf("report not found")
	ErrArchiveDisabled      = fmt.Errorf("report archive is not configured")
	ErrIndexDisabled        = fmt.Errorf("comment index is not configured")
	ErrInvalidLimit         = fmt.Errorf("limit must be positive")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
