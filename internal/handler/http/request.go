package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// maxBodySize bounds request bodies.
const maxBodySize = 1 << 20

// decodeJSON decodes the body of r into dst. An empty body leaves dst
// untouched so that missing fields surface as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

// identity returns the caller established by the auth middleware.
func identity(r *http.Request) (models.Identity, error) {
	id, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, service.ErrAccessDenied
	}
	return id, nil
}
