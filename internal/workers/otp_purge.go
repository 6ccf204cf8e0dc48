// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package workers

import (
	"context"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
)

// otpPurgeWorker deletes expired one-time codes on a fixed interval.
// Expiry is also enforced on every read, so a missed sweep only delays
// cleanup.
type otpPurgeWorker struct {
	otpRepository store.OTPRepository
	interval      time.Duration
	clock         utils.Clock

	logger *logger.Logger
}

func NewOTPPurgeWorker(otpRepository store.OTPRepository, interval time.Duration, clock utils.Clock, logger *logger.Logger) Worker {
	return &otpPurgeWorker{
		otpRepository: otpRepository,
		interval:      interval,
		clock:         clock,
		logger:        logger,
	}
}

func (w *otpPurgeWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("otp purge worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("otp purge worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *otpPurgeWorker) purge(ctx context.Context) {
	removed, err := w.otpRepository.DeleteExpiredOTPs(ctx, w.clock.NowUtc())
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "otpPurgeWorker.purge").Msg("error purging expired otps")
		}
		return
	}

	if removed > 0 {
		w.logger.Debug().Int64("removed", removed).Msg("expired otps purged")
	}
}
