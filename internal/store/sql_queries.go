package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "name", "email", "password", "created_at"}
	noteColumns = []string{"id", "user_id", "title", "description", "tag", "created_at"}

	returningNote = "RETURNING " + strings.Join(noteColumns, ", ")
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Password, user.Date).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.
		Insert(note.TableName()).
		Columns(noteColumns...).
		Values(note.ID, note.UserID, note.Title, note.Description, note.Tag, note.Date).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNoteByIDQuery(b sq.StatementBuilderType, noteID string) (string, []any, error) {
	query, args, err := b.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectNotesByOwnerQuery orders by id, which is time-ordered (UUIDv7),
// so notes come back in creation order.
func buildSelectNotesByOwnerQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery sets only the non-nil fields of update and matches
// on both id and owner, returning the updated row. It must not be called
// with an empty update.
func buildUpdateNoteQuery(b sq.StatementBuilderType, update models.NoteUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	qb := b.Update(models.Note{}.TableName())
	if update.Title != nil {
		qb = qb.Set("title", *update.Title)
	}
	if update.Description != nil {
		qb = qb.Set("description", *update.Description)
	}
	if update.Tag != nil {
		qb = qb.Set("tag", *update.Tag)
	}

	query, args, err := qb.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returningNote).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteNoteQuery matches on both id and owner and returns the
// removed row.
func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID, ownerID string) (string, []any, error) {
	query, args, err := b.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": ownerID}).
		Suffix(returningNote).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
