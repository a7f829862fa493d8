package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// errorResponse is the status and client-facing message of a known error.
type errorResponse struct {
	status  int
	message string
}

// errorStatuses is matched top to bottom; the first sentinel found in the
// error chain decides the response.
var errorStatuses = []struct {
	target error
	resp   errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidJSON}},

	{service.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgValidationFailed}},
	{service.ErrUserAlreadyExists, errorResponse{http.StatusBadRequest, app.MsgUserAlreadyExists}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidCredentials}},

	{service.ErrAccessDenied, errorResponse{http.StatusUnauthorized, app.MsgAccessDenied}},
	{service.ErrInvalidToken, errorResponse{http.StatusUnauthorized, app.MsgInvalidToken}},

	{service.ErrNotAllowed, errorResponse{http.StatusForbidden, app.MsgNotAllowed}},

	{service.ErrNoteNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},
	{service.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
}

var internalError = errorResponse{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError renders err as JSON. Validation failures list every rejected
// field; other errors carry a single message. withSuccess adds
// "success":false, which the account endpoints report. Undecodable bodies
// always carry it.
// Details of unexpected errors are only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error, withSuccess bool) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	var success *bool
	if withSuccess || errors.Is(err, ErrInvalidJSON) {
		success = new(bool)
	}

	if resp.status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	var verrs validators.ValidationErrors
	if errors.Is(err, service.ErrValidation) && errors.As(err, &verrs) {
		utils.WriteJSON(w, models.ValidationErrorResponse{Success: success, Errors: verrs}, resp.status)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Success: success, Error: resp.message}, resp.status)
}
