// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a text note owned by exactly one user.
//
// Title and Description are never empty once stored. The owner is fixed at
// creation and never changes.
type Note struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	Date        time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial update of a note.
// A nil field is left untouched by the store.
type NoteUpdate struct {
	// ID is the note to update. Required.
	ID string

	// UserID is the expected owner. The store writes only when both
	// ID and UserID match the stored record.
	UserID string

	Title       *string
	Description *string
	Tag         *string
}

// IsEmpty reports whether the update carries no fields to change.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Tag == nil
}
