package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_withRetry(t *testing.T) {
	db := &DB{
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
		retryDelays:        []time.Duration{0, 0},
	}

	t.Run("retryable error is repeated", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return pgError(pgerrcode.SerializationFailure)
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the last delay", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.DeadlockDetected)
		})

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("non retryable error returns at once", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.UniqueViolation)
		})

		assert.Equal(t, pgerrcode.UniqueViolation, postgresError(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		slow := &DB{
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             logger.Nop(),
			retryDelays:        []time.Duration{time.Hour},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := slow.withRetry(ctx, func() error {
			calls++
			return pgError(pgerrcode.ConnectionFailure)
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("no classificator runs once", func(t *testing.T) {
		calls := 0
		err := (&DB{}).withRetry(context.Background(), func() error {
			calls++
			return errors.New("boom")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestDB_Ping(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))

	db := &DB{DB: conn, logger: logger.Nop()}
	assert.Error(t, db.Ping(context.Background()))
}

func TestClassifyPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.DeadlockDetected))))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.AdminShutdown)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.CheckViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
