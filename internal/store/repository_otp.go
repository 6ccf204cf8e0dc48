package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// otpRepository is the PostgreSQL-backed implementation of [OTPRepository].
// The email column is the primary key of "otp_entries", so an upsert
// replaces the previous code atomically.
type otpRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

func (r *otpRepository) UpsertOTP(ctx context.Context, entry models.OTPEntry) error {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, upsertOTP, entry.Email, entry.Code, entry.ExpiresAt)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.UpsertOTP").Msg("error upserting otp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *otpRepository) GetOTP(ctx context.Context, email string) (models.OTPEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.OTPEntry
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, getOTP, email).
			Scan(&entry.Email, &entry.Code, &entry.ExpiresAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OTPEntry{}, ErrOTPNotFound
		}
		log.Err(err).Str("func", "*otpRepository.GetOTP").Msg("error selecting otp")
		return models.OTPEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *otpRepository) DeleteOTP(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, deleteOTP, email)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.DeleteOTP").Msg("error deleting otp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *otpRepository) DeleteExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var result sql.Result
	err := r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, deleteExpiredOTPs, now)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.DeleteExpiredOTPs").Msg("error purging expired otps")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
