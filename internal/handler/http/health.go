package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// healthz reports 200 {"status":"ok"} while the store answers pings and
// 503 {"status":"unavailable"} otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("storage ping failed")
			utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusUnavailable}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK}, http.StatusOK)
}
