package checkinv2

import (
	"github.com/ooni/checkinv2/internal/model"
	"github.com/ooni/checkinv2/internal/runtimex"
)

// NewRequest creates a new check-in v2 request. All the arguments may be
// empty. The other fields describe the command line probe we're emulating.
func NewRequest(probeASN, probeCC string, onlyCategories []string) *model.OOAPICheckInConfigV2 {
	if onlyCategories == nil {
		onlyCategories = []string{} // serialize as `[]` rather than `null`
	}
	return &model.OOAPICheckInConfigV2{
		Charging:        true,
		EngineName:      "ooniprobe-engine",
		EngineVersion:   "0.1.0",
		OnWiFi:          true,
		Platform:        "linux",
		ProbeASN:        probeASN,
		ProbeCC:         probeCC,
		RunType:         model.RunTypeManual,
		SoftwareName:    "miniooni",
		SoftwareVersion: "0.1.0",
		WebConnectivity: &model.OOAPICheckInConfigV2WebConnectivity{
			OnlyCategories: onlyCategories,
		},
	}
}

// DowngradeRequest converts a check-in v2 request to a check-in v1 request. The
// only renamed field is web_connectivity.only_categories, which becomes
// web_connectivity.category_codes. This function panics if the v2 request or
// its web_connectivity field is nil, since the caller is responsible for
// providing a complete v2 request (e.g., one created using [NewRequest]).
func DowngradeRequest(v2 *model.OOAPICheckInConfigV2) *model.OOAPICheckInConfigV1 {
	runtimex.Assert(v2 != nil, "DowngradeRequest: passed nil v2 request")
	runtimex.Assert(v2.WebConnectivity != nil, "DowngradeRequest: passed nil v2.WebConnectivity")
	return &model.OOAPICheckInConfigV1{
		Charging:        v2.Charging,
		OnWiFi:          v2.OnWiFi,
		Platform:        v2.Platform,
		ProbeASN:        v2.ProbeASN,
		ProbeCC:         v2.ProbeCC,
		RunType:         v2.RunType,
		SoftwareName:    v2.SoftwareName,
		SoftwareVersion: v2.SoftwareVersion,
		WebConnectivity: model.OOAPICheckInConfigV1WebConnectivity{
			CategoryCodes: v2.WebConnectivity.OnlyCategories,
		},
	}
}
