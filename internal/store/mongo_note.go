package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type noteDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Tag         string             `bson:"tag"`
	Date        time.Time          `bson:"date"`
}

func (d noteDocument) toModel() models.Note {
	return models.Note{
		ID:          d.ID.Hex(),
		UserID:      d.User.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Tag:         d.Tag,
		Date:        d.Date,
	}
}

// mongoNoteRepository implements [NoteRepository] over the notes collection.
// Updates and deletes filter on both _id and user in one server-side
// operation.
type mongoNoteRepository struct {
	coll  *mongo.Collection
	clock func() time.Time
}

// NewMongoNoteRepository constructs a [NoteRepository] backed by MongoDB.
func NewMongoNoteRepository(m *MongoDB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating mongo note repository")
	return &mongoNoteRepository{coll: m.db.Collection(notesCollection), clock: mongoNow}
}

// CreateNote implements [NoteRepository].
func (r *mongoNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	owner, ok := objectID(note.UserID)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: invalid owner id %q", ErrExecutingQuery, note.UserID)
	}

	doc := noteDocument{
		ID:          primitive.NewObjectID(),
		User:        owner,
		Title:       note.Title,
		Description: note.Description,
		Tag:         note.Tag,
		Date:        r.clock(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoNoteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

// FindNoteByID implements [NoteRepository].
func (r *mongoNoteRepository) FindNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	oid, ok := objectID(noteID)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	return decodeNote(ctx, "*mongoNoteRepository.FindNoteByID", r.coll.FindOne(ctx, bson.M{"_id": oid}))
}

// ListNotesByOwner implements [NoteRepository].
func (r *mongoNoteRepository) ListNotesByOwner(ctx context.Context, userID string) ([]models.Note, error) {
	notes := make([]models.Note, 0)

	owner, ok := objectID(userID)
	if !ok {
		return notes, nil
	}

	log := logger.FromContext(ctx)
	cursor, err := r.coll.Find(ctx, bson.M{"user": owner}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", "*mongoNoteRepository.ListNotesByOwner").Msg("error finding notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc noteDocument
		if err = cursor.Decode(&doc); err != nil {
			log.Err(err).Str("func", "*mongoNoteRepository.ListNotesByOwner").Msg("error decoding note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, doc.toModel())
	}
	if err = cursor.Err(); err != nil {
		log.Err(err).Str("func", "*mongoNoteRepository.ListNotesByOwner").Msg("error iterating notes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote implements [NoteRepository].
func (r *mongoNoteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	filter, ok := ownedNoteFilter(update.ID, update.UserID)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	if update.IsEmpty() {
		return decodeNote(ctx, "*mongoNoteRepository.UpdateNote", r.coll.FindOne(ctx, filter))
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Tag != nil {
		set["tag"] = *update.Tag
	}

	res := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	return decodeNote(ctx, "*mongoNoteRepository.UpdateNote", res)
}

// DeleteNote implements [NoteRepository].
func (r *mongoNoteRepository) DeleteNote(ctx context.Context, noteID, ownerID string) (models.Note, error) {
	filter, ok := ownedNoteFilter(noteID, ownerID)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	return decodeNote(ctx, "*mongoNoteRepository.DeleteNote", r.coll.FindOneAndDelete(ctx, filter))
}

func ownedNoteFilter(noteID, ownerID string) (bson.M, bool) {
	oid, ok := objectID(noteID)
	if !ok {
		return nil, false
	}
	owner, ok := objectID(ownerID)
	if !ok {
		return nil, false
	}
	return bson.M{"_id": oid, "user": owner}, true
}

func decodeNote(ctx context.Context, caller string, res *mongo.SingleResult) (models.Note, error) {
	var doc noteDocument
	err := res.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Msg("error decoding note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}
