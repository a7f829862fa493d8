// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes server and its CLI.
//
// Request-scoped loggers travel in the context: middleware attaches them with
// WithContext and handlers, services and stores read them back through
// FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the server logger: JSON lines on stdout tagged with role,
// a timestamp and the calling function under "func". The global level is
// reset to debug; SetLevel narrows it afterwards.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns the CLI logger. It writes warnings and above to
// stderr so that command output on stdout stays machine-readable.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	return newLogger(os.Stderr, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		Logger: zerolog.New(w).With().Str("role", role).Timestamp().Caller().Logger(),
	}
}

// SetLevel sets the global level by name ("debug", "info", "warn", ...).
// An empty name keeps the current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithStr returns a copy of l that adds key=value to every entry.
// The receiver is left untouched.
func (l *Logger) WithStr(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// FromRequest is FromContext applied to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
