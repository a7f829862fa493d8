// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the notes API.
//
// Clients match on some of these texts, so the wording is part of the wire
// contract and must not change.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgValidationFailed describes a request rejected by field validation.
	// The response itself lists the rejected fields.
	MsgValidationFailed = "Validation failed"

	// MsgUserAlreadyExists is returned when registering an email that is
	// already taken.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidCredentials is returned for an unknown email or a wrong
	// password. The two cases are not told apart.
	MsgInvalidCredentials = "Invalid Credentials"

	// MsgAccessDenied is returned when a protected route is called without
	// a token.
	MsgAccessDenied = "Access Denied"

	// MsgInvalidToken is returned when the token is malformed, expired or
	// signed with another key.
	MsgInvalidToken = "Invalid Token"

	// MsgNotAllowed is returned when a note belongs to another user.
	MsgNotAllowed = "Not Allowed"

	// MsgNoteNotFound is returned when no note has the requested id.
	MsgNoteNotFound = "Note not found"

	// MsgUserNotFound is returned when the token holder no longer exists.
	MsgUserNotFound = "User not found"

	// MsgNoteDeleted is the success value of a note deletion.
	MsgNoteDeleted = "Note has been deleted"

	MsgStatusOK          = "ok"
	MsgStatusUnavailable = "unavailable"
)
