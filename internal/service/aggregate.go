package service

import (
	"github.com/alexanderramin/wam/internal/domain"
	"github.com/alexanderramin/wam/internal/gradereport"
	"golang.org/x/net/html"
)

// RowParser converts one report row into a grade entry.
type RowParser interface {
	ParseRow(row *html.Node) (domain.GradeEntry, error)
}

// Aggregate parses every row on its own. Rows that fail are left out of
// the table and returned as row errors; one bad row never stops the batch.
func Aggregate(rows []*html.Node, parser RowParser) (*domain.GradeTable, []*domain.RowError) {
	table := domain.NewGradeTable()
	var rejected []*domain.RowError
	for i, row := range rows {
		entry, err := parser.ParseRow(row)
		if err != nil {
			rejected = append(rejected, &domain.RowError{Index: i, Raw: gradereport.RowText(row), Err: err})
			continue
		}
		table.Add(entry)
	}
	return table, rejected
}

// rejectionCounts groups row errors by reason for logging.
func rejectionCounts(rejected []*domain.RowError) map[string]int {
	counts := make(map[string]int)
	for _, r := range rejected {
		counts[domain.RejectionReason(r.Err)]++
	}
	return counts
}

func rejectionDetails(rejected []*domain.RowError) []string {
	details := make([]string, 0, len(rejected))
	for _, r := range rejected {
		details = append(details, r.Detail())
	}
	return details
}

func entryLines(table *domain.GradeTable) []string {
	lines := make([]string, 0, table.Len())
	for _, e := range table.Entries {
		lines = append(lines, e.String())
	}
	return lines
}
