package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// MemoryStorage keeps users and notes in process memory. It implements
// [UserRepository], [NoteRepository] and [Pinger] and is meant for local
// runs and tests; all data is lost on restart.
type MemoryStorage struct {
	mu sync.RWMutex

	users   map[string]models.User
	byEmail map[string]string

	notes     map[string]models.Note
	noteOrder []string

	ids   *utils.IDGenerator
	clock func() time.Time
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage(logger *logger.Logger) *MemoryStorage {
	logger.Debug().Msg("creating in-memory storage")
	return &MemoryStorage{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		notes:   make(map[string]models.Note),
		ids:     utils.NewIDGenerator(),
		clock:   utcNow,
	}
}

// Ping implements [Pinger].
func (m *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// CreateUser implements [UserRepository].
func (m *MemoryStorage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byEmail[user.Email]; taken {
		return models.User{}, ErrEmailAlreadyExists
	}

	user.ID = m.ids.NewID()
	user.Date = m.clock()
	m.users[user.ID] = user
	m.byEmail[user.Email] = user.ID

	return user, nil
}

// FindUserByEmail implements [UserRepository].
func (m *MemoryStorage) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return m.users[id], nil
}

// FindUserByID implements [UserRepository].
func (m *MemoryStorage) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// CreateNote implements [NoteRepository].
func (m *MemoryStorage) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	note.ID = m.ids.NewID()
	note.Date = m.clock()
	m.notes[note.ID] = note
	m.noteOrder = append(m.noteOrder, note.ID)

	return note, nil
}

// FindNoteByID implements [NoteRepository].
func (m *MemoryStorage) FindNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	note, ok := m.notes[noteID]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}
	return note, nil
}

// ListNotesByOwner implements [NoteRepository].
func (m *MemoryStorage) ListNotesByOwner(ctx context.Context, userID string) ([]models.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := make([]models.Note, 0)
	for _, id := range m.noteOrder {
		if note := m.notes[id]; note.UserID == userID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

// UpdateNote implements [NoteRepository].
func (m *MemoryStorage) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	note, ok := m.notes[update.ID]
	if !ok || note.UserID != update.UserID {
		return models.Note{}, ErrNoteNotFound
	}

	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Description != nil {
		note.Description = *update.Description
	}
	if update.Tag != nil {
		note.Tag = *update.Tag
	}
	m.notes[note.ID] = note

	return note, nil
}

// DeleteNote implements [NoteRepository].
func (m *MemoryStorage) DeleteNote(ctx context.Context, noteID, ownerID string) (models.Note, error) {
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	note, ok := m.notes[noteID]
	if !ok || note.UserID != ownerID {
		return models.Note{}, ErrNoteNotFound
	}

	delete(m.notes, noteID)
	for i, id := range m.noteOrder {
		if id == noteID {
			m.noteOrder = append(m.noteOrder[:i], m.noteOrder[i+1:]...)
			break
		}
	}

	return note, nil
}
