package service

import "github.com/alexanderramin/wam/internal/domain"

// BuildResult is the table built from a page plus the rows it skipped.
type BuildResult struct {
	Table    *domain.GradeTable
	Rows     int
	Rejected []*domain.RowError
}

// ManualEntry is a grade typed in by the user. WeightPct is a percentage.
type ManualEntry struct {
	Mark      float64
	MaxMark   float64
	WeightPct float64
}

// NoticeKind identifies a reconciliation message for the user.
type NoticeKind string

const (
	NoticeUnderWeight   NoticeKind = "under_weight"
	NoticeOverWeight    NoticeKind = "over_weight"
	NoticeRescaling     NoticeKind = "rescaling"
	NoticeEntryRejected NoticeKind = "entry_rejected"
)

// Notice is a message emitted while reconciling.
type Notice struct {
	Kind        NoticeKind
	TotalWeight float64
	Err         error
}

// ReconcileState is a step of the weight reconciliation state machine.
type ReconcileState string

const (
	StateVerifying     ReconcileState = "verifying_weights"
	StateAwaitingInput ReconcileState = "awaiting_user_input"
	StateAppended      ReconcileState = "appended_entry"
	StateDeclined      ReconcileState = "declined"
	StateRescaling     ReconcileState = "rescaling"
	StateReconciled    ReconcileState = "reconciled"
)

// ReconcileResult summarizes how a table reached 100%.
type ReconcileResult struct {
	InitialWeight float64
	FinalWeight   float64
	Added         int
	Rescaled      bool
	// Trace lists every state visited, ending in StateReconciled.
	Trace []ReconcileState
}
