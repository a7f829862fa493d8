package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return s
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Alice", Email: "a@x.io", Password: "hash"})
	require.NoError(t, err)

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.True(t, created.Date.Equal(byEmail.Date))

	_, err = s.UserRepository.CreateUser(ctx, models.User{Name: "Other", Email: "a@x.io", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = s.UserRepository.FindUserByEmail(ctx, "A@x.io")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.NoError(t, s.Pinger.Ping(ctx))
}

func TestSQLite_NoteLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Alice", Email: "a@x.io", Password: "h"})
	require.NoError(t, err)
	bob, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Bob", Email: "b@x.io", Password: "h"})
	require.NoError(t, err)

	first, err := s.NoteRepository.CreateNote(ctx, models.Note{UserID: alice.ID, Title: "one", Description: "first"})
	require.NoError(t, err)
	second, err := s.NoteRepository.CreateNote(ctx, models.Note{UserID: alice.ID, Title: "two", Description: "second", Tag: "work"})
	require.NoError(t, err)

	notes, err := s.NoteRepository.ListNotesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)

	empty, err := s.NoteRepository.ListNotesByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	title := "uno"
	_, err = s.NoteRepository.UpdateNote(ctx, models.NoteUpdate{ID: first.ID, UserID: bob.ID, Title: &title})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	updated, err := s.NoteRepository.UpdateNote(ctx, models.NoteUpdate{ID: first.ID, UserID: alice.ID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "uno", updated.Title)
	assert.Equal(t, "first", updated.Description)
	assert.True(t, first.Date.Equal(updated.Date))

	_, err = s.NoteRepository.DeleteNote(ctx, second.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	deleted, err := s.NoteRepository.DeleteNote(ctx, second.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "work", deleted.Tag)

	_, err = s.NoteRepository.FindNoteByID(ctx, second.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}
