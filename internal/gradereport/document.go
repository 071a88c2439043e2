package gradereport

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// ErrNoReportTable is returned when a page does not hold exactly one
// report table.
var ErrNoReportTable = errors.New("there should be exactly one grade report")

// Document is a parsed grade report page.
type Document struct {
	root *html.Node
	sel  Selectors
}

// Parse reads an HTML page. Empty selector fields fall back to defaults.
func Parse(r io.Reader, sel Selectors) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{root: root, sel: sel.withDefaults()}, nil
}

// Selectors returns the markers the document was parsed with.
func (d *Document) Selectors() Selectors {
	return d.sel
}

// ReportTable returns the single table carrying the report classes.
func (d *Document) ReportTable() (*html.Node, error) {
	tables := findAll(d.root, byTagAndClasses("table", d.sel.TableClass))
	if len(tables) != 1 {
		return nil, fmt.Errorf("%w (found %d)", ErrNoReportTable, len(tables))
	}
	return tables[0], nil
}

// Rows returns the tr elements of the report table body.
func (d *Document) Rows() ([]*html.Node, error) {
	table, err := d.ReportTable()
	if err != nil {
		return nil, err
	}
	body := findFirst(table, byTag("tbody"))
	if body == nil {
		return nil, nil
	}
	return findAll(body, byTag("tr")), nil
}
