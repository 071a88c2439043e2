package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGradeEntry_DerivedValues(t *testing.T) {
	e, err := NewGradeEntry("Midterm", 45, 50, 0.2)
	require.NoError(t, err)

	assert.Equal(t, "Midterm", e.Title)
	assert.InDelta(t, 0.9, e.NormalizedMark(), 1e-12)
	assert.Equal(t, e.NormalizedMark()*e.Weight, e.WeightedContribution())
}

func TestNewGradeEntry_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     float64
		max     float64
		weight  float64
		wantErr error
	}{
		{"negative mark", -1, 10, 0.1, ErrInvalidMark},
		{"nan mark", math.NaN(), 10, 0.1, ErrInvalidMark},
		{"zero max", 5, 0, 0.1, ErrInvalidMaxMark},
		{"negative max", 5, -10, 0.1, ErrInvalidMaxMark},
		{"infinite max", 5, math.Inf(1), 0.1, ErrInvalidMaxMark},
		{"zero weight", 5, 10, 0, ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradeEntry("x", tt.raw, tt.max, tt.weight)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewGradeEntry_AllowsBonusAboveMax(t *testing.T) {
	e, err := NewGradeEntry("Bonus", 12, 10, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, e.NormalizedMark(), 1e-12)
}

func TestNewManualEntry(t *testing.T) {
	e, err := NewManualEntry(18, 20, 0.25)
	require.NoError(t, err)
	assert.Equal(t, CustomTitle, e.Title)
	assert.InDelta(t, 0.225, e.WeightedContribution(), 1e-12)

	_, err = NewManualEntry(18, 20, 1.5)
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestGradeEntry_String(t *testing.T) {
	e, err := NewGradeEntry("Essay", 80, 100, 0.3)
	require.NoError(t, err)
	assert.Equal(t, "Essay: 80.0/100.0 | 0.3 | 0.24", e.String())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.4286, Round(0.3/0.7, 4))
	assert.Equal(t, 87.0, Round((0.8*0.3+0.9*0.2+0.9*0.5)*100, 2))
	assert.Equal(t, 1.0, Round(0.99999, 4))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{80, "80.0"},
		{0.3, "0.3"},
		{87, "87.0"},
		{0.4286, "0.4286"},
		{1, "1.0"},
		{12.5, "12.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.in))
	}
}

func TestRowError_Is(t *testing.T) {
	rowErr := &RowError{Index: 3, Raw: "Project (10%) - / 100", Err: fmt.Errorf("%w: %q", ErrUngradedEntry, "-")}
	err := error(rowErr)
	assert.ErrorIs(t, err, ErrUngradedEntry)
	assert.Equal(t, `row 3: row is not graded yet: "-"`, err.Error())
	assert.Equal(t, `row 3 "Project (10%) - / 100": row is not graded yet: "-"`, rowErr.Detail())
	assert.Equal(t, "ungraded", RejectionReason(err))
}
