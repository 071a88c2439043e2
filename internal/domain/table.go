package domain

import (
	"math"
	"sort"
)

// WeightStatus classifies a table's total weight against 100%.
type WeightStatus string

const (
	WeightUnder WeightStatus = "under"
	WeightExact WeightStatus = "exact"
	WeightOver  WeightStatus = "over"
)

const (
	weightPlaces  = 4
	rescalePlaces = 6
)

// GradeTable is an ordered collection of grade entries. Titles identify
// entries for ordering only; duplicates are kept.
type GradeTable struct {
	Entries []GradeEntry
}

// NewGradeTable returns a table holding a copy of entries.
func NewGradeTable(entries ...GradeEntry) *GradeTable {
	t := &GradeTable{}
	for _, e := range entries {
		t.Add(e)
	}
	return t
}

// Add appends e without deduplication.
func (t *GradeTable) Add(e GradeEntry) {
	t.Entries = append(t.Entries, e)
}

// Len returns the number of entries.
func (t *GradeTable) Len() int {
	return len(t.Entries)
}

// TotalWeight returns the unrounded sum of all weights.
func (t *GradeTable) TotalWeight() float64 {
	var total float64
	for _, e := range t.Entries {
		total += e.Weight
	}
	return total
}

// WeightStatus compares the total weight, rounded to 4 places, against 1.
func (t *GradeTable) WeightStatus() WeightStatus {
	total := Round(t.TotalWeight(), weightPlaces)
	switch {
	case total < 1:
		return WeightUnder
	case total > 1:
		return WeightOver
	default:
		return WeightExact
	}
}

// Rescale divides every weight by the total weight (rounded to 6 places)
// so the weights sum to 1. Contributions follow since they are derived.
// A table whose weight status is already exact is left untouched.
func (t *GradeTable) Rescale() error {
	total := Round(t.TotalWeight(), rescalePlaces)
	if len(t.Entries) == 0 || total <= 0 || math.IsNaN(total) {
		return ErrEmptyTable
	}
	if t.WeightStatus() == WeightExact {
		return nil
	}
	for i := range t.Entries {
		t.Entries[i].Weight /= total
	}
	return nil
}

// TotalWeightedMark returns the sum of all weighted contributions.
func (t *GradeTable) TotalWeightedMark() float64 {
	var total float64
	for _, e := range t.Entries {
		total += e.WeightedContribution()
	}
	return total
}

// SortByTitle orders entries by title, keeping the relative order of
// entries that share a title.
func (t *GradeTable) SortByTitle() {
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return TitleLess(t.Entries[i], t.Entries[j])
	})
}

// TitleLess is the total order over entries: lexicographic by title alone.
func TitleLess(a, b GradeEntry) bool {
	return a.Title < b.Title
}
