package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	authTokenHeader = "auth-token"
	userAgent       = "go-notes-keeper-client"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	prefix string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from cfg.HTTPAddress ("http://" is
// assumed when no scheme is given) and API paths are resolved under
// cfg.APIPrefix.
//
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(userAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{
		client: client,
		prefix: normalizePrefix(cfg.APIPrefix),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// authRequest is request with the session token attached.
func (h *httpServerAdapter) authRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.request(ctx).SetHeader(authTokenHeader, token), nil
}

// Register implements [ServerAdapter] via POST {prefix}/auth/createuser.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	return h.authenticate(ctx, "/auth/createuser", req)
}

// Login implements [ServerAdapter] via POST {prefix}/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (string, error) {
	var result models.AuthResponse

	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(&result).
		Post(h.prefix + path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.AuthToken == "" {
		return "", fmt.Errorf("%s: server returned no token", path)
	}

	h.SetToken(result.AuthToken)
	h.logger.Debug().Str("path", path).Msg("session token stored")
	return result.AuthToken, nil
}

// Profile implements [ServerAdapter] via POST {prefix}/auth/getuser.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	req, err := h.authRequest(ctx)
	if err != nil {
		return user, err
	}

	resp, err := req.SetResult(&user).Post(h.prefix + "/auth/getuser")
	if err != nil {
		return user, fmt.Errorf("profile request: %w", err)
	}
	return user, mapHTTPError(resp)
}

// ListNotes implements [ServerAdapter] via GET {prefix}/notes/fetchallnotes.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes := []models.Note{}

	req, err := h.authRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&notes).Get(h.prefix + "/notes/fetchallnotes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return notes, nil
}

// AddNote implements [ServerAdapter] via POST {prefix}/notes/addnote.
func (h *httpServerAdapter) AddNote(ctx context.Context, note models.CreateNoteRequest) (models.Note, error) {
	var created models.Note

	req, err := h.authRequest(ctx)
	if err != nil {
		return created, err
	}

	resp, err := req.SetBody(note).SetResult(&created).Post(h.prefix + "/notes/addnote")
	if err != nil {
		return created, fmt.Errorf("add note request: %w", err)
	}
	return created, mapHTTPError(resp)
}

// UpdateNote implements [ServerAdapter] via PUT {prefix}/notes/updatenote/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, update models.UpdateNoteRequest) (models.Note, error) {
	var updated models.Note

	req, err := h.authRequest(ctx)
	if err != nil {
		return updated, err
	}

	resp, err := req.
		SetPathParam("id", id).
		SetBody(update).
		SetResult(&updated).
		Put(h.prefix + "/notes/updatenote/{id}")
	if err != nil {
		return updated, fmt.Errorf("update note request: %w", err)
	}
	return updated, mapHTTPError(resp)
}

// DeleteNote implements [ServerAdapter] via DELETE {prefix}/notes/deletenote/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) (models.Note, error) {
	var result models.DeleteNoteResponse

	req, err := h.authRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.
		SetPathParam("id", id).
		SetResult(&result).
		Delete(h.prefix + "/notes/deletenote/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("delete note request: %w", err)
	}
	return result.Note, mapHTTPError(resp)
}

// Version implements [ServerAdapter] via GET {prefix}/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get(h.prefix + "/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}
