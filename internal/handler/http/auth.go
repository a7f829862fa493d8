package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, true)
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, true)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Success: true, AuthToken: token.String()}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, true)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, true)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Success: true, AuthToken: token.String()}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
