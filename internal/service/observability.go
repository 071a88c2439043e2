package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Use-case names reported to observers.
const (
	UseCaseBuildTable       = "build_table"
	UseCaseReconcileWeights = "reconcile_weights"
)

// Outcome summarizes how a use case ended.
type Outcome string

const (
	OutcomeBuilt         Outcome = "built"
	OutcomeNoReportTable Outcome = "no_report_table"
	OutcomeUnchanged     Outcome = "unchanged"
	OutcomeToppedUp      Outcome = "topped_up"
	OutcomeRescaled      Outcome = "rescaled"
	OutcomeFailed        Outcome = "failed"
)

// UseCaseEvent describes one finished use case.
type UseCaseEvent struct {
	Name      string
	Outcome   Outcome
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Fields    map[string]any
}

// Success reports whether the use case returned without error.
func (e UseCaseEvent) Success() bool { return e.Err == nil }

// UseCaseObserver receives use-case events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver drops every event.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to w as slog text records.
// Every record of one observer carries the same run_id.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return &logUseCaseObserver{logger: logger.With("run_id", uuid.NewString())}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success()),
	}
	if event.Outcome != "" {
		attrs = append(attrs, slog.String("outcome", string(event.Outcome)))
	}

	// Sorted so records of the same use case line up.
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
