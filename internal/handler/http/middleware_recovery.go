package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// withRecovery turns a panic in a downstream handler into a 500 response.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			writeError(w, r, fmt.Errorf("panic: %v", rec), false)
		}()

		next.ServeHTTP(w, r)
	})
}
