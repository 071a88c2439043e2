package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wam/internal/domain"
)

// reconcile drives the table to a total weight of 100%.
//
// Under-weighted tables loop between verification and user input until the
// user declines (then weights are rescaled) or the total reaches 100%.
// Over-weighted tables are rescaled without asking.
func reconcile(ctx context.Context, table *domain.GradeTable, prompter Prompter) (*ReconcileResult, error) {
	result := &ReconcileResult{InitialWeight: table.TotalWeight()}

	state := StateVerifying
	for state != StateReconciled {
		result.Trace = append(result.Trace, state)

		switch state {
		case StateVerifying:
			switch table.WeightStatus() {
			case domain.WeightExact:
				state = StateReconciled
			case domain.WeightOver:
				prompter.Notify(ctx, Notice{Kind: NoticeOverWeight, TotalWeight: table.TotalWeight()})
				state = StateRescaling
			default:
				prompter.Notify(ctx, Notice{Kind: NoticeUnderWeight, TotalWeight: table.TotalWeight()})
				state = StateAwaitingInput
			}

		case StateAwaitingInput:
			add, err := prompter.ConfirmAddEntry(ctx)
			if err != nil {
				return nil, fmt.Errorf("reading answer: %w", err)
			}
			if !add {
				state = StateDeclined
				continue
			}
			in, err := prompter.ReadManualEntry(ctx)
			if err != nil {
				return nil, fmt.Errorf("reading grade: %w", err)
			}
			entry, err := domain.NewManualEntry(in.Mark, in.MaxMark, in.WeightPct/100)
			if err != nil {
				prompter.Notify(ctx, Notice{Kind: NoticeEntryRejected, TotalWeight: table.TotalWeight(), Err: err})
				state = StateVerifying
				continue
			}
			table.Add(entry)
			result.Added++
			state = StateAppended

		case StateAppended:
			state = StateVerifying

		case StateDeclined:
			state = StateRescaling

		case StateRescaling:
			prompter.Notify(ctx, Notice{Kind: NoticeRescaling, TotalWeight: table.TotalWeight()})
			if err := table.Rescale(); err != nil {
				return nil, fmt.Errorf("rescaling weights: %w", err)
			}
			result.Rescaled = true
			state = StateReconciled
		}
	}

	result.Trace = append(result.Trace, StateReconciled)
	result.FinalWeight = table.TotalWeight()
	return result, nil
}
