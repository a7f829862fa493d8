// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account.
//
// Email is unique across all users and compared exactly as stored.
// Password always holds a bcrypt hash and is never serialised.
type User struct {
	// ID is the store-assigned identifier of the user.
	ID string `json:"_id"`

	// Name is the display name given at registration.
	Name string `json:"name"`

	// Email is the login identifier.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// Date is the moment the account was created.
	Date time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated principal established by the auth gate
// for the lifetime of a single request.
type Identity struct {
	UserID string
}
