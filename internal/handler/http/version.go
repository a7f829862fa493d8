package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// getServerVersion writes the version as plain text. Build date and
// commit, when known, are sent as headers.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	build := h.services.AppInfoService.GetBuildInfo(ctx)
	if date := build.BuildDate(); date != "" {
		w.Header().Set("X-Build-Date", date)
	}
	if commit := build.BuildCommit(); commit != "" {
		w.Header().Set("X-Build-Commit", commit)
	}

	utils.WriteText(w, serverVersion, http.StatusOK)
}
