package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns it with the store-assigned
	// ID and Date. Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email, including
	// the password hash. Returns [ErrUserNotFound] when there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID.
	// Returns [ErrUserNotFound] when there is none.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// NoteRepository persists notes.
type NoteRepository interface {
	// CreateNote stores a new note and returns it with the store-assigned
	// ID and Date.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNoteByID returns the note with the given ID regardless of its
	// owner. Returns [ErrNoteNotFound] when there is none.
	FindNoteByID(ctx context.Context, noteID string) (models.Note, error)

	// ListNotesByOwner returns all notes of userID in storage order.
	// The result is never nil.
	ListNotesByOwner(ctx context.Context, userID string) ([]models.Note, error)

	// UpdateNote applies the non-nil fields of update to the note matching
	// both update.ID and update.UserID and returns the stored result.
	// Returns [ErrNoteNotFound] when no note matches both.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note matching both noteID and ownerID and
	// returns it as it was. Returns [ErrNoteNotFound] when no note matches both.
	DeleteNote(ctx context.Context, noteID, ownerID string) (models.Note, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
