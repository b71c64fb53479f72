// Package checkinv2 implements the check-in v2 API on top of the check-in
// v1 API. We build a v2 request, downgrade it to a v1 request, call the v1
// API, and upgrade the v1 response to a v2 response whose main script
// contains the commands the probe should execute in order.
package checkinv2

import (
	"context"
	"io"

	"github.com/ooni/checkinv2/internal/logx"
	"github.com/ooni/checkinv2/internal/model"
	"github.com/ooni/checkinv2/internal/probeservices"
)

// Backend is the check-in v1 backend.
type Backend interface {
	// CheckInV1 calls the check-in v1 API.
	CheckInV1(ctx context.Context, config *model.OOAPICheckInConfigV1) (*model.OOAPICheckInResultV1, error)

	// Geolocate returns the probe ASN and CC as seen by the backend.
	Geolocate(ctx context.Context) (probeASN, probeCC string, err error)
}

var _ Backend = &probeservices.Client{}

// Config contains config for [Run].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Backend is the MANDATORY [Backend] to use.
	Backend Backend

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// OnlyCategories contains the OPTIONAL category codes to
	// which we should restrict the URLs to measure.
	OnlyCategories []string

	// RequestsWriter is the OPTIONAL [io.Writer] where we write
	// the v2 and v1 requests. When nil, we don't write them.
	RequestsWriter io.Writer
}

// Run geolocates the probe, calls the check-in v1 API on behalf of a v2
// request and returns the corresponding check-in v2 response.
func Run(ctx context.Context, config *Config) (*model.OOAPICheckInResultV2, error) {
	// obtain the probe geolocation
	config.Logger.Info("checkinv2: geolocating the probe")
	probeASN, probeCC, err := config.Backend.Geolocate(ctx)
	if err != nil {
		return nil, err
	}
	config.Logger.Infof("checkinv2: probe_asn=%s probe_cc=%s", probeASN, probeCC)

	// obtain and log the check-in v2 API request
	v2request := NewRequest(probeASN, probeCC, config.OnlyCategories)
	writeRequest(config.RequestsWriter, "v2request>", v2request)

	// obtain and log the check-in v1 API request
	v1request := DowngradeRequest(v2request)
	writeRequest(config.RequestsWriter, "v1request>", v1request)

	// call the check-in v1 API
	config.Logger.Info("checkinv2: calling the check-in v1 API")
	v1response, err := config.Backend.CheckInV1(ctx, v1request)
	if err != nil {
		return nil, err
	}

	// obtain the check-in v2 API response
	return UpgradeResponse(config.Logger, v1response)
}

// writeRequest writes the request to w when w is not nil.
func writeRequest(w io.Writer, prefix string, request any) {
	if w != nil {
		logx.WriteJSONLines(w, prefix, request)
	}
}
