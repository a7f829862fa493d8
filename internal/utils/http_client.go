package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used to talk to the notes server.
// It embeds *resty.Client, so every resty method is available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends userAgent with
// every request and expects JSON responses by default.
//
//	client := utils.NewHTTPClient("notes-cli/1.0")
//	resp, err := client.R().Get("http://localhost:5000/api/version")
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: client}
}
