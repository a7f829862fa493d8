package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" table. Updates and deletes are single statements keyed on both
// the note id and its owner, so ownership cannot change between the match
// and the write.
type noteRepository struct {
	db    *DB
	ids   *utils.IDGenerator
	clock func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:    db,
		ids:   utils.NewIDGenerator(),
		clock: utcNow,
	}
}

// CreateNote implements [NoteRepository].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.ID = r.ids.NewID()
	note.Date = r.clock()

	query, args, err := buildInsertNoteQuery(r.db.builder, note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building query")
		return models.Note{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// FindNoteByID implements [NoteRepository].
func (r *noteRepository) FindNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteByIDQuery(r.db.builder, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("error building query")
		return models.Note{}, err
	}

	return r.queryNote(ctx, "*noteRepository.FindNoteByID", query, args)
}

// ListNotesByOwner implements [NoteRepository].
func (r *noteRepository) ListNotesByOwner(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesByOwnerQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByOwner").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByOwner").Msg("error selecting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = scanNote(rows, &note); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotesByOwner").Msg("error scanning note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByOwner").Msg("error iterating notes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote implements [NoteRepository]. An empty update only checks
// that the note exists for this owner.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		note, err := r.FindNoteByID(ctx, update.ID)
		if err != nil {
			return models.Note{}, err
		}
		if note.UserID != update.UserID {
			return models.Note{}, ErrNoteNotFound
		}
		return note, nil
	}

	query, args, err := buildUpdateNoteQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building query")
		return models.Note{}, err
	}

	return r.queryNote(ctx, "*noteRepository.UpdateNote", query, args)
}

// DeleteNote implements [NoteRepository].
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, ownerID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder, noteID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return models.Note{}, err
	}

	return r.queryNote(ctx, "*noteRepository.DeleteNote", query, args)
}

// queryNote runs a statement expected to yield at most one note row.
func (r *noteRepository) queryNote(ctx context.Context, caller, query string, args []any) (models.Note, error) {
	var note models.Note
	err := scanNote(r.db.QueryRowContext(ctx, query, args...), &note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Msg("error querying note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(&note.ID, &note.UserID, &note.Title, &note.Description, &note.Tag, dbTime{&note.Date})
}
