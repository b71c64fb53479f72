package probeservices

import (
	"context"

	"github.com/ooni/checkinv2/internal/model"
)

// geolocateRequestWebConnectivity is the web_connectivity
// field of [geolocateRequest].
type geolocateRequestWebConnectivity struct {
	CategoryCodes []string `json:"category_codes"`
}

// geolocateRequest is a check-in v1 request lacking the probe_asn and
// probe_cc fields. When these fields are missing, the backend infers them
// from the address from which we're connecting and includes them in the
// response. Sending empty strings would not have the same effect.
type geolocateRequest struct {
	Charging        bool                            `json:"charging"`
	OnWiFi          bool                            `json:"on_wifi"`
	Platform        string                          `json:"platform"`
	RunType         model.RunType                   `json:"run_type"`
	SoftwareName    string                          `json:"software_name"`
	SoftwareVersion string                          `json:"software_version"`
	WebConnectivity geolocateRequestWebConnectivity `json:"web_connectivity"`
}

// Geolocate returns the probe ASN and country code as seen by the backend.
//
// We obtain this information by (ab)using the check-in v1 API, which is
// coupled to the backend's behavior when probe_asn and probe_cc are missing.
// When the response lacks either value we warn and return an empty string,
// which the check-in request will carry as is.
func (c *Client) Geolocate(ctx context.Context) (probeASN, probeCC string, err error) {
	request := &geolocateRequest{
		Charging:        false,
		OnWiFi:          false,
		Platform:        "linux",
		RunType:         model.RunTypeTimed,
		SoftwareName:    "miniooni",
		SoftwareVersion: "0.1.0-dev",
		WebConnectivity: geolocateRequestWebConnectivity{
			CategoryCodes: []string{"MISC"},
		},
	}
	response, err := checkInV1[*geolocateRequest](ctx, c, request)
	if err != nil {
		return "", "", err
	}
	c.Logger.Debugf("geolocate: probe_asn=%s probe_cc=%s", response.ProbeASN, response.ProbeCC)
	if response.ProbeASN == "" {
		c.Logger.Warn("geolocate: the backend did not send the probe_asn")
	}
	if response.ProbeCC == "" {
		c.Logger.Warn("geolocate: the backend did not send the probe_cc")
	}
	return response.ProbeASN, response.ProbeCC, nil
}
