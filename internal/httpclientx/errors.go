package httpclientx

import "fmt"

// TransportError indicates that we could not complete the HTTP round
// trip or read the response body (e.g., connection refused, TLS failure).
type TransportError struct {
	// URL is the URL we were using.
	URL string

	// Err is the underlying error.
	Err error
}

// Error implements error.
func (err *TransportError) Error() string {
	return fmt.Sprintf("httpclientx: transport error for %s: %s", err.URL, err.Err.Error())
}

// Unwrap returns the underlying error.
func (err *TransportError) Unwrap() error {
	return err.Err
}

// DecodeError indicates that the response body is not the JSON we expected.
type DecodeError struct {
	// URL is the URL we were using.
	URL string

	// Err is the underlying error.
	Err error
}

// Error implements error.
func (err *DecodeError) Error() string {
	return fmt.Sprintf("httpclientx: cannot decode response from %s: %s", err.URL, err.Err.Error())
}

// Unwrap returns the underlying error.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

// StatusError indicates that the server returned a status code >= 400.
type StatusError struct {
	// URL is the URL we were using.
	URL string

	// StatusCode is the HTTP status code.
	StatusCode int
}

// Error implements error.
func (err *StatusError) Error() string {
	return fmt.Sprintf("httpclientx: request to %s failed: HTTP status %d", err.URL, err.StatusCode)
}
