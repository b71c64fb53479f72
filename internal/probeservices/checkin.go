package probeservices

import (
	"context"

	"github.com/ooni/checkinv2/internal/httpclientx"
	"github.com/ooni/checkinv2/internal/model"
	"github.com/ooni/checkinv2/internal/urlx"
)

// CheckInV1 calls the check-in v1 API with the given request and returns
// the parsed response. There are no retries. On failure, the error is one
// of the errors documented by [httpclientx.PostJSON].
func (c *Client) CheckInV1(
	ctx context.Context, config *model.OOAPICheckInConfigV1) (*model.OOAPICheckInResultV1, error) {
	return checkInV1[*model.OOAPICheckInConfigV1](ctx, c, config)
}

// checkInV1 allows us to send request types other than
// [*model.OOAPICheckInConfigV1] to the check-in v1 API.
func checkInV1[Input any](ctx context.Context, c *Client, config Input) (*model.OOAPICheckInResultV1, error) {
	// construct the URL to use
	URL, err := urlx.ResolveReference(c.BaseURL, "/api/v1/check-in", "")
	if err != nil {
		return nil, err
	}

	// issue the API call
	return httpclientx.PostJSON[Input, *model.OOAPICheckInResultV1](
		ctx,
		&httpclientx.Config{
			Client:    c.HTTPClient,
			Logger:    c.Logger,
			UserAgent: c.UserAgent,
		},
		URL,
		config,
	)
}
