package cli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/alexanderramin/wam/internal/cli/formatter"
	"github.com/alexanderramin/wam/internal/service"
)

// Console prompts used while reconciling weights.
const (
	promptAddAnother = "Do you want to add another grade? (y/n): "
	promptMark       = "Enter the mark of the new grade: "
	promptMaxMark    = "Enter the max mark of the new grade: "
	promptWeight     = "Enter the weight (%) of the new grade: "
)

// consolePrompter asks reconciliation questions over a line-based console.
type consolePrompter struct {
	in  io.Reader
	out io.Writer
	// autoRescale answers "no" to every top-up question without asking.
	autoRescale bool
}

var _ service.Prompter = (*consolePrompter)(nil)

func (p *consolePrompter) Notify(_ context.Context, n service.Notice) {
	fmt.Fprint(p.out, formatter.FormatNotice(n))
}

func (p *consolePrompter) ConfirmAddEntry(context.Context) (bool, error) {
	if p.autoRescale {
		return false, nil
	}
	return promptChoiceIO(p.in, p.out, promptAddAnother)
}

func (p *consolePrompter) ReadManualEntry(context.Context) (service.ManualEntry, error) {
	var e service.ManualEntry
	var err error

	if e.Mark, err = promptFloatIO(p.in, p.out, promptMark, nonNegative); err != nil {
		return e, err
	}
	if e.MaxMark, err = promptFloatIO(p.in, p.out, promptMaxMark, positive); err != nil {
		return e, err
	}
	if e.WeightPct, err = promptFloatIO(p.in, p.out, promptWeight, percentage); err != nil {
		return e, err
	}
	return e, nil
}

func nonNegative(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func positive(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func percentage(v float64) error {
	if math.IsNaN(v) || v <= 0 || v > 100 {
		return fmt.Errorf("enter a percentage between 0 and 100")
	}
	return nil
}
