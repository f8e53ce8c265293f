package workers

import (
	"context"
	"time"

	"workwise_backend/internal/logger"
	"workwise_backend/internal/repositories"
)

// Reset codes older than this are swept regardless of state; expiry is
// enforced at verify time, the sweep only keeps the table small.
const resetCodeRetention = 24 * time.Hour

const sweepInterval = 1 * time.Hour

// ResetCodeWorker periodically deletes stale password reset codes.
type ResetCodeWorker struct {
	codeRepo repositories.ResetCodeRepository
}

func NewResetCodeWorker(codeRepo repositories.ResetCodeRepository) *ResetCodeWorker {
	return &ResetCodeWorker{codeRepo: codeRepo}
}

// Start launches the sweep loop. It returns immediately; the loop stops
// when ctx is cancelled.
func (w *ResetCodeWorker) Start(ctx context.Context) {
	go w.sweepLoop(ctx)
}

func (w *ResetCodeWorker) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reset code worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *ResetCodeWorker) sweep() {
	cutoff := time.Now().UTC().Add(-resetCodeRetention)

	deleted, err := w.codeRepo.DeleteOlderThan(cutoff)
	if err != nil {
		logger.Error("failed to sweep reset codes", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("swept stale reset codes", "deleted", deleted)
	}
}
