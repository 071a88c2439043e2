package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/wam/internal/domain"
	"github.com/alexanderramin/wam/internal/gradereport"
)

type gradeService struct {
	selectors gradereport.Selectors
	observer  UseCaseObserver
}

func NewGradeService(selectors gradereport.Selectors, observers ...UseCaseObserver) GradeService {
	return &gradeService{
		selectors: selectors,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *gradeService) BuildTable(ctx context.Context, page io.Reader) (result *BuildResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		outcome := OutcomeBuilt
		switch {
		case errors.Is(err, gradereport.ErrNoReportTable):
			outcome = OutcomeNoReportTable
		case err != nil:
			outcome = OutcomeFailed
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      UseCaseBuildTable,
			Outcome:   outcome,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    fields,
		})
	}()

	doc, err := gradereport.Parse(page, s.selectors)
	if err != nil {
		return nil, err
	}
	rows, err := doc.Rows()
	if err != nil {
		return nil, err
	}

	table, rejected := Aggregate(rows, gradereport.NewParser(doc.Selectors()))
	fields["rows"] = len(rows)
	fields["accepted"] = table.Len()
	fields["rejected"] = len(rejected)
	for reason, n := range rejectionCounts(rejected) {
		fields["rejected_"+reason] = n
	}
	fields["total_weight"] = domain.Round(table.TotalWeight(), 4)
	fields["entries"] = entryLines(table)
	if len(rejected) > 0 {
		fields["rejected_rows"] = rejectionDetails(rejected)
	}

	return &BuildResult{Table: table, Rows: len(rows), Rejected: rejected}, nil
}

func (s *gradeService) Reconcile(ctx context.Context, table *domain.GradeTable, prompter Prompter) (result *ReconcileResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		outcome := OutcomeFailed
		if result != nil {
			outcome = reconcileOutcome(result)
			fields["initial_total_weight"] = domain.Round(result.InitialWeight, 4)
			fields["final_total_weight"] = domain.Round(result.FinalWeight, 4)
			fields["added"] = result.Added
			fields["rescaled"] = result.Rescaled
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      UseCaseReconcileWeights,
			Outcome:   outcome,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    fields,
		})
	}()

	if table == nil {
		return nil, fmt.Errorf("reconciling weights: %w", domain.ErrEmptyTable)
	}
	return reconcile(ctx, table, prompter)
}

func reconcileOutcome(r *ReconcileResult) Outcome {
	switch {
	case r.Rescaled:
		return OutcomeRescaled
	case r.Added > 0:
		return OutcomeToppedUp
	default:
		return OutcomeUnchanged
	}
}
