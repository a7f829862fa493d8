package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storages groups the repositories of the selected backend into a single
// value that can be passed to the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	Pinger         Pinger

	close func(ctx context.Context) error
}

// NewStorages initialises the storage layer for cfg. The backend is chosen
// by [config.DB.ResolveDriver]:
//   - "postgres" and "sqlite" connect through database/sql and run pending
//     migrations;
//   - "mongo" connects to MongoDB and ensures its indexes;
//   - "memory" keeps everything in process memory.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	driver := cfg.ResolveDriver()
	logger.Info().Str("driver", driver).Msg("creating new storages...")

	switch driver {
	case config.DriverPostgres, config.DriverSQLite:
		connect := NewConnectPostgres
		if driver == config.DriverSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", driver, err)
		}
		if err = db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			UserRepository: NewUserRepository(db, logger),
			NoteRepository: NewNoteRepository(db, logger),
			Pinger:         db,
			close:          func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverMongo:
		m, err := NewConnectMongo(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}

		return &Storages{
			UserRepository: NewMongoUserRepository(m, logger),
			NoteRepository: NewMongoNoteRepository(m, logger),
			Pinger:         m,
			close:          m.Disconnect,
		}, nil

	case config.DriverMemory:
		return NewMemoryStorages(logger), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}

// NewMemoryStorages returns [Storages] backed by a single [MemoryStorage].
func NewMemoryStorages(logger *logger.Logger) *Storages {
	mem := NewMemoryStorage(logger)
	return &Storages{
		UserRepository: mem,
		NoteRepository: mem,
		Pinger:         mem,
	}
}

// Close releases the backend's connections.
func (s *Storages) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
