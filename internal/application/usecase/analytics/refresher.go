package analytics

import (
	"context"
	"log/slog"
	"time"
)

// Refresher recomputes the financial summary on a fixed interval so the
// memoized entry stays warm and the first read after a quiet period does not
// pay the computation cost.
type Refresher struct {
	summaryUseCase *GetSummaryUseCase
	interval       time.Duration
}

// NewRefresher creates a new summary refresher.
func NewRefresher(summaryUseCase *GetSummaryUseCase, interval time.Duration) *Refresher {
	return &Refresher{
		summaryUseCase: summaryUseCase,
		interval:       interval,
	}
}

// Start begins the refresh loop. It blocks until the context is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	slog.Info("Summary refresher started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refreshOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Summary refresher shutting down")
			return
		case <-ticker.C:
			r.refreshOnce(ctx)
		}
	}
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	if _, err := r.summaryUseCase.Execute(ctx, GetSummaryInput{}); err != nil {
		slog.Warn("Summary refresh failed", "error", err)
	}
}
