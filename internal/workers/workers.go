package workers

import (
	"context"
	"sync"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. A zero OTPPurgeInterval
// disables the OTP sweep.
func NewWorkers(storages *store.Storages, cfg config.Workers, clock utils.Clock, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.OTPPurgeInterval > 0 {
		w.workers = append(w.workers, NewOTPPurgeWorker(storages.OTPRepository, cfg.OTPPurgeInterval, clock, logger))
	}

	return w
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
