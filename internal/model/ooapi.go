package model

//
// OONI check-in API data model.
//
// See https://api.ooni.io/apidocs/ for v1. The v2 messages are what
// we generate locally by upgrading the v1 response.
//

import (
	"encoding/json"
	"fmt"
)

// OOAPICheckInConfigV2WebConnectivity is the WebConnectivity
// portion of OOAPICheckInConfigV2.
type OOAPICheckInConfigV2WebConnectivity struct {
	// OnlyCategories contains the category codes to restrict URLs to.
	OnlyCategories []string `json:"only_categories"`
}

// OOAPICheckInConfigV2 is the check-in v2 API request.
type OOAPICheckInConfigV2 struct {
	// Charging indicates whether the phone is charging.
	Charging bool `json:"charging"`

	// EngineName is the name of the measurement engine.
	EngineName string `json:"engine_name"`

	// EngineVersion is the version of the measurement engine.
	EngineVersion string `json:"engine_version"`

	// OnWiFi indicates if the phone is connected to a WiFi.
	OnWiFi bool `json:"on_wifi"`

	// Platform of the probe.
	Platform string `json:"platform"`

	// ProbeASN is the probe ASN (may be empty).
	ProbeASN string `json:"probe_asn"`

	// ProbeCC is the probe country code (may be empty).
	ProbeCC string `json:"probe_cc"`

	// RunType indicates whether the run is "timed" or "manual".
	RunType RunType `json:"run_type"`

	// SoftwareName of the probe.
	SoftwareName string `json:"software_name"`

	// SoftwareVersion of the probe.
	SoftwareVersion string `json:"software_version"`

	// WebConnectivity contains WebConnectivity information.
	WebConnectivity *OOAPICheckInConfigV2WebConnectivity `json:"web_connectivity"`
}

// OOAPICheckInConfigV1WebConnectivity is the WebConnectivity
// portion of OOAPICheckInConfigV1.
type OOAPICheckInConfigV1WebConnectivity struct {
	// CategoryCodes contains an array of category codes
	CategoryCodes []string `json:"category_codes"`
}

// OOAPICheckInConfigV1 is the check-in v1 API request. Every field
// has a corresponding field inside [OOAPICheckInConfigV2].
type OOAPICheckInConfigV1 struct {
	// Charging indicates whether the phone is charging.
	Charging bool `json:"charging"`

	// OnWiFi indicates if the phone is connected to a WiFi.
	OnWiFi bool `json:"on_wifi"`

	// Platform of the probe.
	Platform string `json:"platform"`

	// ProbeASN is the probe ASN.
	ProbeASN string `json:"probe_asn"`

	// ProbeCC is the probe country code.
	ProbeCC string `json:"probe_cc"`

	// RunType indicates whether the run is "timed" or "manual".
	RunType RunType `json:"run_type"`

	// SoftwareName of the probe.
	SoftwareName string `json:"software_name"`

	// SoftwareVersion of the probe.
	SoftwareVersion string `json:"software_version"`

	// WebConnectivity contains WebConnectivity information.
	WebConnectivity OOAPICheckInConfigV1WebConnectivity `json:"web_connectivity"`
}

// OOAPICheckInNettestV1 is the entry for a nettest inside
// the tests field of [OOAPICheckInResultV1].
type OOAPICheckInNettestV1 struct {
	// ReportID is the report ID the probe should use.
	ReportID string `json:"report_id"`

	// URLs contains the URLs to measure. We keep each entry
	// as raw JSON because we copy it verbatim into targets.
	URLs []json.RawMessage `json:"urls,omitempty"`
}

// OOAPICheckInResultConfigV1 contains the v1 configuration.
type OOAPICheckInResultConfigV1 struct {
	// TestHelpers contains test-helpers information. We keep it as raw
	// JSON because we copy it verbatim into the v2 config. An empty
	// value means that the backend did not send the key.
	TestHelpers json.RawMessage `json:"test_helpers"`
}

// OOAPICheckInResultV1 is the result returned by the check-in v1 API.
//
// A nil Conf, a nil Tests, or an empty UTCTime mean that the
// backend did not send the corresponding key.
type OOAPICheckInResultV1 struct {
	// Conf contains configuration.
	Conf *OOAPICheckInResultConfigV1 `json:"conf"`

	// ProbeASN contains the probe's ASN.
	ProbeASN string `json:"probe_asn"`

	// ProbeCC contains the probe's CC.
	ProbeCC string `json:"probe_cc"`

	// Tests maps a nettest name to its entry.
	Tests map[string]*OOAPICheckInNettestV1 `json:"tests"`

	// UTCTime contains the time in UTC.
	UTCTime string `json:"utc_time"`

	// V is the version.
	V int64 `json:"v"`
}

// OOAPICheckInResultConfigV2 is the global configuration we build
// when upgrading a v1 response. Consumers of [OOAPICheckInResultV2]
// see it as raw JSON so that keys we do not know about survive.
type OOAPICheckInResultConfigV2 struct {
	// TestHelpers contains test-helpers information.
	TestHelpers json.RawMessage `json:"test_helpers"`
}

// OOAPICheckInResultVersion2 is the value of the v field of
// [OOAPICheckInResultV2] and [InterpreterScript].
const OOAPICheckInResultVersion2 = 2

// OOAPICheckInResultV2 is the check-in v2 API response.
//
// Config and V are raw JSON because we copy them verbatim into the
// [InterpreterScript]. An empty value means the key is missing.
type OOAPICheckInResultV2 struct {
	// Config contains the global configuration.
	Config json.RawMessage `json:"config"`

	// MainScript is the script the probe should run.
	MainScript []ScriptCommand `json:"main_script"`

	// FallbackScript is the script the probe should cache and only
	// run when it cannot contact the backend. Currently always empty.
	FallbackScript []ScriptCommand `json:"fallback_script"`

	// UTCTime contains the time in UTC.
	UTCTime string `json:"utc_time"`

	// V is the version.
	V json.RawMessage `json:"v"`
}

// SchemaError indicates that a document lacks a required key.
type SchemaError struct {
	// Document is the name of the document (e.g., "check-in v1 response").
	Document string

	// Key is the path of the missing key (e.g., "conf.test_helpers").
	Key string
}

// Error implements error.
func (err *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required key: %s", err.Document, err.Key)
}
