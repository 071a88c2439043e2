package service

import (
	"context"
	"io"

	"github.com/alexanderramin/wam/internal/domain"
)

// GradeService builds a grade table from a report page and reconciles its
// weights to 100%.
type GradeService interface {
	BuildTable(ctx context.Context, page io.Reader) (*BuildResult, error)
	Reconcile(ctx context.Context, table *domain.GradeTable, prompter Prompter) (*ReconcileResult, error)
}

// Prompter is the user-facing side of weight reconciliation. Calls block
// until the user answers.
type Prompter interface {
	Notify(ctx context.Context, n Notice)
	// ConfirmAddEntry asks whether to add another grade before rescaling.
	ConfirmAddEntry(ctx context.Context) (bool, error)
	ReadManualEntry(ctx context.Context) (ManualEntry, error)
}
