// Package httpclientx contains extensions to more easily invoke HTTP APIs.
package httpclientx

import (
	"context"
	"io"
	"net/http"
)

// zeroValue is a convenience function to return the zero value.
func zeroValue[T any]() T {
	return *new(T)
}

// do sends the given request and returns the raw response body on success.
func do(ctx context.Context, req *http.Request, config *Config) ([]byte, error) {
	// assign the user agent
	req.Header.Set("User-Agent", config.UserAgent)

	// perform the round trip
	resp, err := config.Client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	// read the whole response body
	rawrespbody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: req.URL.String(), Err: err}
	}

	// log the raw response body
	config.Logger.Debugf("%s %s: raw response body: %s", req.Method, req.URL.String(), string(rawrespbody))

	// handle the case of failure
	if resp.StatusCode >= 400 {
		return nil, &StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode}
	}

	return rawrespbody, nil
}
