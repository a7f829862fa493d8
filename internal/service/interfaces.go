package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// IssueToken signs a token for userID that expires after the
	// configured duration.
	IssueToken(ctx context.Context, userID string) (models.Token, error)

	// VerifyToken checks signature, issuer, expiry and the user claim.
	// Every failure is reported as [ErrInvalidToken].
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuthService manages accounts: registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)
}

// NoteService manages the notes of the requesting user. Every method takes
// the authenticated user id and refuses to touch notes owned by others.
type NoteService interface {
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	CreateNote(ctx context.Context, userID string, req models.CreateNoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, req models.UpdateNoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) (models.Note, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
