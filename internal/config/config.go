package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/wam/internal/gradereport"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the markup markers and runtime switches of a run.
type Config struct {
	ReportTableClass string
	RowTitleClass    string
	IconTag          string
	BadgeTag         string
	InitialDir       string
	LogUseCases      bool
}

// DefaultConfig returns a Config matching the standard grade report page.
func DefaultConfig() Config {
	return Config{
		ReportTableClass: gradereport.DefaultTableClass,
		RowTitleClass:    gradereport.DefaultTitleClass,
		IconTag:          gradereport.DefaultIconTag,
		BadgeTag:         gradereport.DefaultBadgeTag,
		InitialDir:       ".",
		LogUseCases:      false,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WAM_TABLE_CLASS"); v != "" {
		cfg.ReportTableClass = v
	}
	if v := os.Getenv("WAM_TITLE_CLASS"); v != "" {
		cfg.RowTitleClass = v
	}
	if v := os.Getenv("WAM_INITIAL_DIR"); v != "" {
		cfg.InitialDir = v
	}
	if v := os.Getenv("WAM_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// fileConfig mirrors Config for TOML decoding. Nil fields were not set.
type fileConfig struct {
	ReportTableClass *string `toml:"report_table_class"`
	RowTitleClass    *string `toml:"row_title_class"`
	IconTag          *string `toml:"icon_tag"`
	BadgeTag         *string `toml:"badge_tag"`
	InitialDir       *string `toml:"initial_dir"`
	LogUseCases      *bool   `toml:"log_use_cases"`
}

// LoadFile overlays the keys set in a TOML file on top of base.
// Unknown keys are rejected.
func LoadFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return base, fmt.Errorf("decoding config %s: %w", path, err)
	}

	cfg := base
	setString(&cfg.ReportTableClass, fc.ReportTableClass)
	setString(&cfg.RowTitleClass, fc.RowTitleClass)
	setString(&cfg.IconTag, fc.IconTag)
	setString(&cfg.BadgeTag, fc.BadgeTag)
	setString(&cfg.InitialDir, fc.InitialDir)
	if fc.LogUseCases != nil {
		cfg.LogUseCases = *fc.LogUseCases
	}
	return cfg, nil
}

// Selectors returns the markup markers for the report parser.
func (c Config) Selectors() gradereport.Selectors {
	return gradereport.Selectors{
		TableClass: c.ReportTableClass,
		TitleClass: c.RowTitleClass,
		IconTag:    c.IconTag,
		BadgeTag:   c.BadgeTag,
	}
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}
