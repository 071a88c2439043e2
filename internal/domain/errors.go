package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTitle indicates a report row has no title cell.
	ErrMissingTitle = errors.New("row has no title")

	// ErrMissingWeight indicates the row title carries no usable "<n>%" weight.
	ErrMissingWeight = errors.New("row has no weight")

	// ErrUngradedEntry indicates the mark cell holds a placeholder dash.
	// Rows rejected with this error are components that are not graded yet.
	ErrUngradedEntry = errors.New("row is not graded yet")

	// ErrInvalidMark indicates the mark cell is not a non-negative number.
	ErrInvalidMark = errors.New("invalid mark")

	// ErrMissingMaxMark indicates the row has no max-mark cell.
	ErrMissingMaxMark = errors.New("row has no max mark")

	// ErrInvalidMaxMark indicates the max-mark cell has no positive number.
	ErrInvalidMaxMark = errors.New("invalid max mark")

	// ErrInvalidWeight indicates a weight outside (0, 1].
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrEmptyTable indicates there is nothing to rescale.
	ErrEmptyTable = errors.New("grade table has no entries")
)

// RowError records why a single report row was rejected. Raw is the row's
// visible text with whitespace collapsed.
type RowError struct {
	Index int
	Raw   string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

// Detail is Error with the row text attached, for logs.
func (e *RowError) Detail() string {
	return fmt.Sprintf("row %d %q: %v", e.Index, e.Raw, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// RejectionReason maps a row error to a short label used in logs.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingTitle):
		return "missing_title"
	case errors.Is(err, ErrMissingWeight):
		return "missing_weight"
	case errors.Is(err, ErrUngradedEntry):
		return "ungraded"
	case errors.Is(err, ErrInvalidMark):
		return "invalid_mark"
	case errors.Is(err, ErrMissingMaxMark):
		return "missing_max_mark"
	case errors.Is(err, ErrInvalidMaxMark):
		return "invalid_max_mark"
	default:
		return "other"
	}
}
