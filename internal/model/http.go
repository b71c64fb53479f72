package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPClient is an HTTP client. The [*http.Client] type
// from the standard library implements this interface.
type HTTPClient interface {
	// Do performs an HTTP round trip.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes idle connections.
	CloseIdleConnections()
}
