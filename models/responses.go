// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Success   bool   `json:"success"`
	AuthToken string `json:"authToken"`
}

// DeleteNoteResponse is returned after a note has been removed.
type DeleteNoteResponse struct {
	Success string `json:"success"`
	Note    Note   `json:"note"`
}

// ErrorResponse carries a single human-readable error.
// Success is omitted by endpoints that do not report it.
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
}

// ValidationErrorResponse carries every field that failed validation.
type ValidationErrorResponse struct {
	Success *bool        `json:"success,omitempty"`
	Errors  []FieldError `json:"errors"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
