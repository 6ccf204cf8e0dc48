package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/migrations"
)

// defaultRetryDelays are the pauses between attempts of a retryable call.
var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	retryDelays        []time.Duration
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	if len(applied) > 0 {
		db.logger.Info().Str("func", "DB.Migrate").Ints64("versions", applied).Msg("applied migrations")
	}
	return nil
}

// Ping checks the connection. It satisfies [Pinger].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// withRetry runs fn and repeats it while the classificator marks the returned
// error as [Retryable]. Without a classificator fn runs exactly once.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	for attempt, delay := range db.retryDelays {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retrying database call")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}

		if err = fn(); err == nil {
			return nil
		}
	}

	return err
}
