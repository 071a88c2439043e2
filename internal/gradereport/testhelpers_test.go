package gradereport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// reportPage wraps rows in a page holding one standard report table.
func reportPage(rows ...string) string {
	return `<html><body><h2>User report</h2>
<table class="generaltable boxaligncenter user-grade"><thead><tr><th>Grade item</th><th>Grade</th><th>Range</th></tr></thead>
<tbody>` + strings.Join(rows, "\n") + `</tbody></table></body></html>`
}

// gradeRow renders a row in the shape of the report page.
func gradeRow(title, markCell, maxCell string) string {
	return `<tr><th class="level2 column-itemname"><div class="rowtitle">` + title + `</div></th>` +
		`<td class="column-grade">` + markCell + `</td><td class="column-range">` + maxCell + `</td></tr>`
}

func bodyRows(t *testing.T, rows ...string) []*html.Node {
	t.Helper()
	doc, err := Parse(strings.NewReader(reportPage(rows...)), DefaultSelectors())
	require.NoError(t, err)
	nodes, err := doc.Rows()
	require.NoError(t, err)
	require.Len(t, nodes, len(rows))
	return nodes
}
