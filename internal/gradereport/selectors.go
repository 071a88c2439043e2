package gradereport

// Markup markers used to locate the report and its cells.
const (
	DefaultTableClass = "generaltable boxaligncenter user-grade"
	DefaultTitleClass = "rowtitle"
	DefaultIconTag    = "i"
	DefaultBadgeTag   = "span"
)

// Selectors names the markup markers the parser looks for.
type Selectors struct {
	// TableClass is the space separated class list of the report table.
	// A table matches when it carries every listed class.
	TableClass string
	// TitleClass is the class of the div holding the row title.
	TitleClass string
	// IconTag and BadgeTag are decorative elements dropped from the mark cell.
	IconTag  string
	BadgeTag string
}

// DefaultSelectors returns the markers of the standard grade report page.
func DefaultSelectors() Selectors {
	return Selectors{
		TableClass: DefaultTableClass,
		TitleClass: DefaultTitleClass,
		IconTag:    DefaultIconTag,
		BadgeTag:   DefaultBadgeTag,
	}
}

func (s Selectors) withDefaults() Selectors {
	d := DefaultSelectors()
	if s.TableClass == "" {
		s.TableClass = d.TableClass
	}
	if s.TitleClass == "" {
		s.TitleClass = d.TitleClass
	}
	if s.IconTag == "" {
		s.IconTag = d.IconTag
	}
	if s.BadgeTag == "" {
		s.BadgeTag = d.BadgeTag
	}
	return s
}
