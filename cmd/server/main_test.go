package main

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func sqliteStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(context.Background(),
		config.DB{Driver: config.DriverSQLite, DSN: "file::memory:"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, storages.Pinger.Ping(context.Background()))
	return storages
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "key",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "1.0.0",
		},
	}
}

func TestRun_ClosesStoragesOnSetupFailure(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func() *config.StructuredConfig
		wantErr error
	}{
		{
			name: "services fail without a version",
			cfg: func() *config.StructuredConfig {
				cfg := testConfig()
				cfg.App.Version = ""
				cfg.Server.HTTPAddress = "127.0.0.1:0"
				return cfg
			},
			wantErr: service.ErrVersionIsNotSpecified,
		},
		{
			name: "handlers fail without a listen address",
			cfg:  testConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storages := sqliteStorages(t)

			err := run(context.Background(), tt.cfg(), models.AppBuildInfo{}, storages, logger.Nop())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			assert.Error(t, storages.Pinger.Ping(context.Background()), "storages must be closed")
		})
	}
}
