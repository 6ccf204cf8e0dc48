package store

import (
	"context"
	"fmt"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
)

// Storages aggregates every repository used by the service layer.
type Storages struct {
	UserRepository UserRepository
	OTPRepository  OTPRepository
	PostRepository PostRepository
	Pinger         Pinger

	// Kind is "postgres" or "memory" and is reported by the health endpoint.
	Kind string

	closeFn func() error
}

// NewStorages opens PostgreSQL and applies migrations when cfg.DB.DSN is
// set. Otherwise it returns the in-memory store, which loses all data on
// restart.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database DSN configured, using in-memory storage")
		return NewMemoryStorages(), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewPostgresStorages(db, log), nil
}

// NewPostgresStorages builds repositories on top of an open connection.
func NewPostgresStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		OTPRepository:  NewOTPRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		Pinger:         db,
		Kind:           "postgres",
		closeFn:        db.Close,
	}
}

// NewMemoryStorages returns repositories sharing one in-memory store.
func NewMemoryStorages() *Storages {
	m := newMemoryStore()
	return &Storages{
		UserRepository: m,
		OTPRepository:  m,
		PostRepository: m,
		Pinger:         m,
		Kind:           "memory",
	}
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
