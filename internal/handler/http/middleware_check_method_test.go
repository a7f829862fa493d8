// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(code) }
}

// buildRouter mirrors the shape of the API routes without any services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/healthz", status(http.StatusOK))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", status(http.StatusOK))
		r.Route("/auth", func(r chi.Router) {
			r.Post("/createuser", status(http.StatusOK))
			r.Post("/login", status(http.StatusOK))
		})
		r.Route("/notes", func(r chi.Router) {
			r.Get("/fetchallnotes", status(http.StatusOK))
			r.Put("/updatenote/{id}", status(http.StatusOK))
			r.Delete("/deletenote/{id}", status(http.StatusNoContent))
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

// ---- Table test ----

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		// registered method passes through
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodPost, "/api/auth/login", http.StatusOK},
		{http.MethodGet, "/api/notes/fetchallnotes", http.StatusOK},
		{http.MethodPut, "/api/notes/updatenote/n1", http.StatusOK},
		{http.MethodDelete, "/api/notes/deletenote/n1", http.StatusNoContent},

		// wrong method on a known path is 404, never 405
		{http.MethodPost, "/healthz", http.StatusNotFound},
		{http.MethodGet, "/api/auth/login", http.StatusNotFound},
		{http.MethodPatch, "/api/auth/createuser", http.StatusNotFound},
		{http.MethodDelete, "/api/notes/fetchallnotes", http.StatusNotFound},
		{http.MethodGet, "/api/notes/deletenote/n1", http.StatusNotFound},
		{http.MethodPost, "/api/notes/updatenote/n1", http.StatusNotFound},
		{http.MethodHead, "/api/notes/fetchallnotes", http.StatusNotFound},

		// unknown path
		{http.MethodGet, "/api/notes/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- Concurrent requests: no races ----

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			method, want := http.MethodGet, http.StatusOK
			if i%2 == 1 {
				method, want = http.MethodDelete, http.StatusNotFound
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/api/notes/fetchallnotes", nil))
			assert.Equal(t, want, rr.Code)
		}(i)
	}
	wg.Wait()
}
