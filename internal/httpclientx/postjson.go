package httpclientx

//
// postjson.go - POST a JSON request and read a JSON response.
//

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// PostJSON sends a POST request with a JSON body and reads a JSON response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config is the config to use;
//
// - URL is the URL to use;
//
// - input is the input structure to JSON serialize as the request body.
//
// There are no retries. On failure, the error is a [*TransportError], a
// [*StatusError], or a [*DecodeError]. A nil input causes [ErrIsNil].
//
// This function either returns an error or a valid Output.
func PostJSON[Input, Output any](ctx context.Context, config *Config, URL string, input Input) (Output, error) {
	// ensure we're not sending a nil map, pointer, or slice
	if _, err := NilSafetyErrorIfNil(input); err != nil {
		return zeroValue[Output](), err
	}

	// serialize the request body
	rawreqbody, err := json.Marshal(input)
	if err != nil {
		return zeroValue[Output](), err
	}

	// log the raw request body
	config.Logger.Debugf("POST %s: raw request body: %s", URL, string(rawreqbody))

	// construct the request to use; using a bytes.Reader
	// causes the Content-Length header to be set
	req, err := http.NewRequestWithContext(ctx, "POST", URL, bytes.NewReader(rawreqbody))
	if err != nil {
		return zeroValue[Output](), err
	}

	// assign the content type
	req.Header.Set("Content-Type", "application/json")

	// get the raw response body
	rawrespbody, err := do(ctx, req, config)

	// handle the case of error
	if err != nil {
		return zeroValue[Output](), err
	}

	// parse the response body as JSON
	var output Output
	if err := json.Unmarshal(rawrespbody, &output); err != nil {
		return zeroValue[Output](), &DecodeError{URL: URL, Err: err}
	}

	// avoid returning a nil map, pointer, or slice for a literal JSON "null"
	if _, err := NilSafetyErrorIfNil(output); err != nil {
		return zeroValue[Output](), &DecodeError{URL: URL, Err: err}
	}

	return output, nil
}
