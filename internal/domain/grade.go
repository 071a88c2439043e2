package domain

import (
	"fmt"
	"math"
)

// CustomTitle is the title given to manually entered grades.
const CustomTitle = "Custom"

// GradeEntry is one graded component of a course.
//
// Weight is a fraction of the final grade. The weighted contribution is
// always derived from the current weight and is never stored.
type GradeEntry struct {
	Title   string
	RawMark float64
	MaxMark float64
	Weight  float64
}

// NewGradeEntry validates the numeric fields and returns an entry.
func NewGradeEntry(title string, rawMark, maxMark, weight float64) (GradeEntry, error) {
	if !isFinite(rawMark) || rawMark < 0 {
		return GradeEntry{}, fmt.Errorf("%w: %v", ErrInvalidMark, rawMark)
	}
	if !isFinite(maxMark) || maxMark <= 0 {
		return GradeEntry{}, fmt.Errorf("%w: %v", ErrInvalidMaxMark, maxMark)
	}
	if !isFinite(weight) || weight <= 0 {
		return GradeEntry{}, fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}
	return GradeEntry{
		Title:   title,
		RawMark: rawMark,
		MaxMark: maxMark,
		Weight:  weight,
	}, nil
}

// NewManualEntry builds a "Custom" entry from values typed by the user.
// The weight is a fraction and must lie in (0, 1].
func NewManualEntry(rawMark, maxMark, weight float64) (GradeEntry, error) {
	if weight > 1 {
		return GradeEntry{}, fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}
	return NewGradeEntry(CustomTitle, rawMark, maxMark, weight)
}

// NormalizedMark returns RawMark / MaxMark. It may exceed 1 for bonus marks.
func (e GradeEntry) NormalizedMark() float64 {
	return e.RawMark / e.MaxMark
}

// WeightedContribution returns NormalizedMark * Weight.
func (e GradeEntry) WeightedContribution() float64 {
	return e.NormalizedMark() * e.Weight
}

func (e GradeEntry) String() string {
	return fmt.Sprintf("%s: %s/%s | %s | %s",
		e.Title,
		FormatFloat(e.RawMark),
		FormatFloat(e.MaxMark),
		FormatFloat(Round(e.Weight, 4)),
		FormatFloat(Round(e.WeightedContribution(), 4)),
	)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
