package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	httpHandler "github.com/MKhiriev/go-notes-keeper/internal/handler/http"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startNotesServer runs the full HTTP stack over the in-memory store.
func startNotesServer(t *testing.T) string {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-secret",
			TokenIssuer:      "e2e",
			TokenDuration:    time.Hour,
			PasswordHashCost: 4,
			Version:          "9.9.9",
		},
		Server: config.Server{HTTPAddress: ":0", APIPrefix: "/api", RequestTimeout: 5 * time.Second},
	}

	storages := store.NewMemoryStorages(logger.Nop())
	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("9.9.9", "", ""), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(httpHandler.NewHandler(services, storages.Pinger, cfg.Server, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestEndToEnd_NotesScenario(t *testing.T) {
	url := startNotesServer(t)
	ctx := context.Background()

	al := newTestAdapter(t, url)
	bo := newTestAdapter(t, url)

	// register and log in
	_, err := al.Register(ctx, models.RegisterRequest{Name: "Al Ice", Email: "al@x.io", Password: "secret"})
	require.NoError(t, err)

	_, err = al.Login(ctx, models.LoginRequest{Email: "al@x.io", Password: "wrong"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid Credentials")

	_, err = al.Login(ctx, models.LoginRequest{Email: "al@x.io", Password: "secret"})
	require.NoError(t, err)

	_, err = al.Register(ctx, models.RegisterRequest{Name: "Al Again", Email: "al@x.io", Password: "secret"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "User already exists")

	profile, err := al.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Al Ice", profile.Name)
	assert.Empty(t, profile.Password)

	// create
	note, err := al.AddNote(ctx, models.CreateNoteRequest{Title: "T", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, note.UserID)
	assert.Equal(t, "", note.Tag)

	// another user can neither see nor touch it
	_, err = bo.Register(ctx, models.RegisterRequest{Name: "Bo Bo", Email: "bo@x.io", Password: "secret"})
	require.NoError(t, err)

	boNotes, err := bo.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, boNotes)

	_, err = bo.DeleteNote(ctx, note.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = al.DeleteNote(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	// partial update keeps the text
	tag := "x"
	updated, err := al.UpdateNote(ctx, note.ID, models.UpdateNoteRequest{Tag: &tag})
	require.NoError(t, err)
	assert.Equal(t, "T", updated.Title)
	assert.Equal(t, "D", updated.Description)
	assert.Equal(t, "x", updated.Tag)

	// delete
	removed, err := al.DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, removed.ID)

	notes, err := al.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	v, err := al.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", v)
}

func TestEndToEnd_ForgedToken(t *testing.T) {
	a := newTestAdapter(t, startNotesServer(t))
	a.SetToken("eyJhbGciOiJIUzI1NiJ9.e30.forged")

	_, err := a.ListNotes(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid Token")
}
