package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Init builds the router. All API routes are mounted under the configured
// prefix; /healthz stays at the root for probes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withRecovery,
		h.withTraceID,
		h.withLogging,
		h.withCORS(),
		middleware.Compress(5),
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/healthz", h.healthz)

	prefix := h.cfg.APIPrefix
	if prefix == "" || prefix == "/" {
		h.apiRoutes(router)
	} else {
		router.Route(prefix, h.apiRoutes)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) apiRoutes(r chi.Router) {
	r.Get("/version", h.getServerVersion)

	r.Route("/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/createuser", h.createUser)
		r.Post("/login", h.login)

		r.With(h.auth).Post("/getuser", h.getUser)
	})

	// The gate is attached per route so that a wrong method on a known
	// path reaches the 404 handler before any token check.
	r.Route("/notes", func(r chi.Router) {
		r.With(h.auth).Get("/fetchallnotes", h.fetchAllNotes)
		r.With(h.auth).Post("/addnote", h.addNote)
		r.With(h.auth).Put("/updatenote/{id}", h.updateNote)
		r.With(h.auth).Delete("/deletenote/{id}", h.deleteNote)
	})
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", authTokenHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler
}
