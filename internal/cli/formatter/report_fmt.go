package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/wam/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Report column headers.
const (
	HeaderName         = "NAME:"
	HeaderMark         = "MARK"
	HeaderMax          = "MAX"
	HeaderWeight       = "WEIGHT"
	HeaderWeightedMark = "WEIGHTED MARK"
)

// FormatReport renders a reconciled table as fixed-width text.
//
// Entries are sorted by title in place. The name column is one wider than
// the longest title. Weights and contributions are rounded to 4 places and
// the closing total is a percentage rounded to 2 places. The output is plain
// text with no styling.
func FormatReport(table *domain.GradeTable) string {
	table.SortByTitle()

	nameWidth := 0
	for _, e := range table.Entries {
		if w := lipgloss.Width(e.Title); w > nameWidth {
			nameWidth = w
		}
	}
	nameWidth++

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(reportLine(nameWidth, HeaderName, HeaderMark, HeaderMax, HeaderWeight, HeaderWeightedMark))
	for _, e := range table.Entries {
		b.WriteString(reportLine(nameWidth,
			e.Title+":",
			domain.FormatFloat(e.RawMark),
			strconv.FormatFloat(e.MaxMark, 'f', 0, 64),
			domain.FormatFloat(domain.Round(e.Weight, 4)),
			domain.FormatFloat(domain.Round(e.WeightedContribution(), 4)),
		))
	}

	total := domain.Round(table.TotalWeightedMark()*100, 2)
	fmt.Fprintf(&b, "\nTotal weighted mark: %s%%\n", domain.FormatFloat(total))

	return b.String()
}

func reportLine(nameWidth int, name, mark, maxMark, weight, weighted string) string {
	return fmt.Sprintf("%s %s / %s | %s | %s\n",
		padRight(name, nameWidth),
		padLeft(mark, 5),
		padRight(maxMark, 4),
		padRight(weight, 6),
		weighted,
	)
}

// padRight pads s with spaces up to width display cells; longer strings
// are left intact.
func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func padLeft(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
