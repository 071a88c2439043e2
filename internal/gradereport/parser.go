package gradereport

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/wam/internal/domain"
	"golang.org/x/net/html"
)

var (
	// weightPattern finds the "<n>%" weight inside a row title.
	weightPattern = regexp.MustCompile(`(\d+\.\d+|\d+)%`)

	// maxMarkPattern skips one character, then captures a run of digits.
	// "/ 100" yields 100; a bare "100" yields 00.
	maxMarkPattern = regexp.MustCompile(`.(\d+)`)
)

// Placeholders shown in the mark cell of components that are not graded.
var placeholders = []string{"-", "–"}

// Parser turns report rows into grade entries.
type Parser struct {
	sel Selectors
}

// NewParser returns a Parser using sel; empty fields fall back to defaults.
func NewParser(sel Selectors) *Parser {
	return &Parser{sel: sel.withDefaults()}
}

// ParseRow converts one tr element into a grade entry. Rejections wrap one
// of the row-level sentinel errors in package domain.
func (p *Parser) ParseRow(row *html.Node) (domain.GradeEntry, error) {
	titleNode := findFirst(row, byTagAndClasses("div", p.sel.TitleClass))
	if titleNode == nil {
		return domain.GradeEntry{}, domain.ErrMissingTitle
	}
	rawTitle := textContent(titleNode)

	weight, err := parseWeight(rawTitle)
	if err != nil {
		return domain.GradeEntry{}, err
	}

	cells := findAll(row, byTag("td"))
	if len(cells) == 0 {
		return domain.GradeEntry{}, fmt.Errorf("%w: no mark cell", domain.ErrInvalidMark)
	}
	mark, err := parseMark(p.markText(cells[0]))
	if err != nil {
		return domain.GradeEntry{}, err
	}

	if len(cells) < 2 {
		return domain.GradeEntry{}, domain.ErrMissingMaxMark
	}
	maxMark, err := ParseMaxMark(textContent(cells[1]))
	if err != nil {
		return domain.GradeEntry{}, err
	}

	title := CleanTitle(rawTitle)
	if title == "" {
		return domain.GradeEntry{}, fmt.Errorf("%w: %q", domain.ErrMissingTitle, rawTitle)
	}

	return domain.NewGradeEntry(title, mark, maxMark, weight)
}

// markText reads the mark cell, dropping the first icon and the first badge
// when the cell is decorated with an icon.
func (p *Parser) markText(cell *html.Node) string {
	icon := findFirst(cell, byTag(p.sel.IconTag))
	if icon == nil {
		return textContent(cell)
	}
	skip := []*html.Node{icon}
	if badge := findFirst(cell, byTag(p.sel.BadgeTag)); badge != nil {
		skip = append(skip, badge)
	}
	return textContent(cell, skip...)
}

// CleanTitle cuts a title at the first "(" and then at the first "[",
// trimming whitespace after each cut.
func CleanTitle(title string) string {
	if i := strings.Index(title, "("); i >= 0 {
		title = title[:i]
	}
	title = strings.TrimSpace(title)
	if i := strings.Index(title, "["); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

func parseWeight(title string) (float64, error) {
	m := weightPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrMissingWeight, title)
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pct <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrMissingWeight, m[0])
	}
	return pct / 100, nil
}

func parseMark(text string) (float64, error) {
	text = strings.TrimSpace(text)
	for _, ph := range placeholders {
		if text == ph {
			return 0, fmt.Errorf("%w: %q", domain.ErrUngradedEntry, text)
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMark, text)
	}
	return v, nil
}

// ParseMaxMark applies the skip-one-character-then-digits rule to the text
// of a max-mark cell.
func ParseMaxMark(text string) (float64, error) {
	m := maxMarkPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMaxMark, text)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMaxMark, text)
	}
	return v, nil
}
