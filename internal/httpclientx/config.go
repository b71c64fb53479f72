package httpclientx

import "github.com/ooni/checkinv2/internal/model"

// Config contains configuration for [PostJSON].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// UserAgent is the MANDATORY User-Agent header value to use.
	UserAgent string
}
