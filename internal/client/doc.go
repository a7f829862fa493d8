// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the notes server.
//
// Each invocation runs one command (register, login, profile, list, add,
// update, delete, version) through an [adapter.ServerAdapter] and prints the
// result as indented JSON. Session tokens are printed by register and login
// and passed back with -t or AUTH_TOKEN.
package client
