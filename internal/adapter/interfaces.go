// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the notes server API.
//
// [ServerAdapter] decouples the command-line client from the transport. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built
// on resty.
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrUnauthorized] for 401). The server's own message is kept in the error
// text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// server. Implementations attach the session token to authenticated calls
// and map transport failures to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the session token sent with every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored session token, or "" if none is set.
	Token() string

	// Register creates an account. On success the returned token is also
	// stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login authenticates with email and password. On success the returned
	// token is also stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Profile returns the account of the token holder.
	Profile(ctx context.Context) (models.User, error)

	// ListNotes returns every note of the token holder.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// AddNote creates a note owned by the token holder.
	AddNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// UpdateNote changes the fields set in req on note id.
	UpdateNote(ctx context.Context, id string, req models.UpdateNoteRequest) (models.Note, error)

	// DeleteNote removes note id and returns it as it was before removal.
	DeleteNote(ctx context.Context, id string) (models.Note, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
