package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationErrors lists every rejected field of a request in field order.
// It is returned by [Validator.Validate] and unwrapped by the HTTP layer
// into a field-level error response.
type ValidationErrors []models.FieldError

// Error joins the field messages.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Path+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
