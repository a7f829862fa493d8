package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// auth is an HTTP middleware that lets through only requests carrying a
// valid session token.
//
// The token is read from the "auth-token" header and, when that is absent,
// from "Authorization: Bearer <token>". The middleware fails closed:
//   - no token at all → 401 {"error":"Access Denied"};
//   - a token that does not verify → 401 {"error":"Invalid Token"}.
//
// In both cases the next handler is never invoked. On success the
// [models.Identity] is stored in the request context (see
// [utils.IdentityFromContext]) and the request logger gains a user_id field.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			writeError(w, r, err, false)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.VerifyToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, service.ErrInvalidToken, false)
			return
		}

		ctx = utils.WithIdentity(ctx, models.Identity{UserID: token.UserID})

		l := logger.FromContext(ctx).WithStr("user_id", token.UserID)

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// tokenFromRequest returns the raw token of r.
//
// It returns [service.ErrAccessDenied] when neither header is set and
// [service.ErrInvalidToken] when Authorization is set but is not a
// well-formed bearer credential.
func tokenFromRequest(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.Header.Get(authTokenHeader)); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if strings.TrimSpace(authHeader) == "" {
		return "", service.ErrAccessDenied
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", service.ErrInvalidToken
	}
	return token, nil
}
