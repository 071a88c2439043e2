package gradereport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Rows(t *testing.T) {
	page := reportPage(
		gradeRow("Essay (30%)", "80", "/ 100"),
		gradeRow("Quiz (20%)", "45", "/ 50"),
	)

	doc, err := Parse(strings.NewReader(page), DefaultSelectors())
	require.NoError(t, err)

	rows, err := doc.Rows()
	require.NoError(t, err)
	assert.Len(t, rows, 2, "header rows are not body rows")
}

func TestDocument_ReportTableMissing(t *testing.T) {
	page := `<html><body><table class="generaltable"><tbody><tr><td>1</td></tr></tbody></table></body></html>`

	doc, err := Parse(strings.NewReader(page), DefaultSelectors())
	require.NoError(t, err)

	_, err = doc.Rows()
	assert.ErrorIs(t, err, ErrNoReportTable)
}

func TestDocument_ReportTableDuplicate(t *testing.T) {
	page := reportPage(gradeRow("A (10%)", "1", "/ 2")) + reportPage(gradeRow("B (10%)", "1", "/ 2"))

	doc, err := Parse(strings.NewReader(page), DefaultSelectors())
	require.NoError(t, err)

	_, err = doc.ReportTable()
	assert.ErrorIs(t, err, ErrNoReportTable)
	assert.Contains(t, err.Error(), "found 2")
}

func TestDocument_ReportTableMatchesClassSubset(t *testing.T) {
	page := `<table class="user-grade generaltable extra boxaligncenter"><tr><td>x</td></tr></table>`

	doc, err := Parse(strings.NewReader(page), DefaultSelectors())
	require.NoError(t, err)

	rows, err := doc.Rows()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "the parser inserts the implied tbody")
}

func TestDocument_CustomSelectors(t *testing.T) {
	page := `<table class="grades"><tbody>
<tr><th><div class="label">Lab (40%)</div></th><td>7</td><td>/ 10</td></tr>
</tbody></table>`

	sel := Selectors{TableClass: "grades", TitleClass: "label"}
	doc, err := Parse(strings.NewReader(page), sel)
	require.NoError(t, err)
	assert.Equal(t, DefaultIconTag, doc.Selectors().IconTag)

	rows, err := doc.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	entry, err := NewParser(doc.Selectors()).ParseRow(rows[0])
	require.NoError(t, err)
	assert.Equal(t, "Lab", entry.Title)
	assert.InDelta(t, 0.4, entry.Weight, 1e-12)
}

func TestRowText_CollapsesWhitespace(t *testing.T) {
	rows := bodyRows(t, gradeRow("Essay\n  (30%)", " <i></i>80 ", "/ 100"))
	assert.Equal(t, "Essay (30%) 80 / 100", RowText(rows[0]))
}
