package digest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

// Worker sends the digest on a fixed interval.
type Worker struct {
	service  *Service
	interval time.Duration
}

// NewWorker creates a new digest worker.
func NewWorker(service *Service, interval time.Duration) *Worker {
	return &Worker{
		service:  service,
		interval: interval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
// The first digest goes out after one full interval, not at startup.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Digest worker started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Digest worker shutting down")
			return
		case <-ticker.C:
			w.sendOnce(ctx)
		}
	}
}

func (w *Worker) sendOnce(ctx context.Context) {
	result, err := w.service.SendDigest(ctx, time.Now().UTC())
	if err != nil {
		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure {
			slog.Error("Digest delivery failed permanently", "error", err)
			return
		}
		slog.Error("Failed to send digest", "error", err)
		return
	}
	slog.Info("Digest sent", "provider_id", result.ProviderID)
}
