// Package probeservices contains code to contact OONI probe services.
//
// The probe services are HTTPS endpoints distributed across a bunch of data
// centres implementing a bunch of OONI APIs. Here we only speak the check-in
// v1 API, which we also use to discover the probe geolocation.
package probeservices

import (
	"net/http"

	"github.com/ooni/checkinv2/internal/logx"
	"github.com/ooni/checkinv2/internal/model"
)

const (
	// DefaultBaseURL is the base URL of the production backend.
	DefaultBaseURL = "https://api.ooni.io"

	// DefaultUserAgent is the default User-Agent header value.
	DefaultUserAgent = "miniooni/0.1.0"
)

// Client is a client for the OONI probe services API.
//
// Construct using [NewClient]. You MAY modify the fields after construction.
type Client struct {
	// BaseURL is the base URL of the backend.
	BaseURL string

	// HTTPClient is the HTTP client to use.
	HTTPClient model.HTTPClient

	// Logger is the logger to use.
	Logger model.Logger

	// UserAgent is the User-Agent header value to use.
	UserAgent string
}

// NewClient creates a new [*Client] using the default backend
// and the default HTTP client from the standard library.
func NewClient(logger model.Logger) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		Logger: &logx.PrefixLogger{
			Prefix: "probeservices: ",
			Logger: model.ValidLoggerOrDefault(logger),
		},
		UserAgent: DefaultUserAgent,
	}
}

// CloseIdleConnections closes the idle connections of the underlying HTTP client.
func (c *Client) CloseIdleConnections() {
	c.HTTPClient.CloseIdleConnections()
}
