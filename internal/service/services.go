package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	tokens := NewTokenService(cfg.App, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, tokens, cfg.App, logger),
		TokenService:   tokens,
		NoteService:    NewNoteService(storages.NoteRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
