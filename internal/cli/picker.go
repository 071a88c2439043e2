package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/wam/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// wamHuhTheme returns a huh theme using the report palette.
func wamHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = formatter.StyleHeader
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = formatter.StyleGreen
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// reportFileForm builds the form that picks a saved grade report page.
func reportFileForm(initialDir string, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Grade report").
				Description("Pick the saved HTML grade report page").
				CurrentDirectory(initialDir).
				AllowedTypes([]string{".html", ".htm"}).
				Picking(true).
				Value(result),
		),
	).WithTheme(wamHuhTheme()).WithShowHelp(true)
}

// PickReportFile shows the file picker and returns the chosen path.
// An aborted picker yields an empty path and no error.
func PickReportFile(ctx context.Context, initialDir string) (string, error) {
	var path string
	if err := reportFileForm(initialDir, &path).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
