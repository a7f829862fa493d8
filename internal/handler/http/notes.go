package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) fetchAllNotes(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	var req models.CreateNoteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, false)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), id.UserID, req)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	var req models.UpdateNoteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, false)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), id.UserID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	note, err := h.services.NoteService.DeleteNote(r.Context(), id.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, false)
		return
	}

	utils.WriteJSON(w, models.DeleteNoteResponse{Success: app.MsgNoteDeleted, Note: note}, http.StatusOK)
}
