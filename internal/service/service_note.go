package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService is the concrete implementation of [NoteService].
//
// Update and delete first load the note to tell a missing note (404) from a
// foreign one (403), then write with a condition on both id and owner so
// that the write cannot land on a note the caller does not own.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewNoteService constructs a [NoteService] over noteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// ListNotes implements [NoteService]. The result is never nil.
func (s *noteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotesByOwner(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.ListNotes").Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// CreateNote implements [NoteService]. A missing tag is stored as "".
func (s *noteService) CreateNote(ctx context.Context, userID string, req models.CreateNoteRequest) (models.Note, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	note := models.Note{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Tag != nil {
		note.Tag = *req.Tag
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.CreateNote").Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// UpdateNote implements [NoteService].
//
// Empty title or description values are ignored so a stored note never
// loses them. A request without applicable fields returns the note as is.
func (s *noteService) UpdateNote(ctx context.Context, userID, noteID string, req models.UpdateNoteRequest) (models.Note, error) {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	update := models.NoteUpdate{ID: noteID, UserID: userID, Tag: req.Tag}
	if req.Title != nil && *req.Title != "" {
		update.Title = req.Title
	}
	if req.Description != nil && *req.Description != "" {
		update.Description = req.Description
	}
	if update.IsEmpty() {
		return note, nil
	}

	updated, err := s.noteRepository.UpdateNote(ctx, update)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.UpdateNote").Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

// DeleteNote implements [NoteService] and returns the removed note.
func (s *noteService) DeleteNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	if _, err := s.ownedNote(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}

	deleted, err := s.noteRepository.DeleteNote(ctx, noteID, userID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.DeleteNote").Msg("note deletion failed")
		return models.Note{}, fmt.Errorf("note deletion failed: %w", err)
	}
	logger.FromContext(ctx).Info().Str("note_id", noteID).Msg("note deleted")

	return deleted, nil
}

// ownedNote loads the note and checks that userID owns it.
// Existence is checked before ownership.
func (s *noteService) ownedNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.FindNoteByID(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteService.ownedNote").Msg("note search failed")
		return models.Note{}, fmt.Errorf("note search failed: %w", err)
	}

	if note.UserID != userID {
		log.Warn().Str("note_id", noteID).Str("user_id", userID).Msg("access to foreign note refused")
		return models.Note{}, ErrNotAllowed
	}

	return note, nil
}
