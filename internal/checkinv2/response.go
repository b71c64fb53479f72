package checkinv2

import (
	"github.com/ooni/checkinv2/internal/model"
	"github.com/ooni/checkinv2/internal/must"
)

// v1ResponseDocument is the document name used by [*model.SchemaError].
const v1ResponseDocument = "check-in v1 response"

// UpgradeResponse converts a check-in v1 response to a check-in v2 response. This
// function returns a [*model.SchemaError] if v1 lacks conf, conf.test_helpers,
// tests, or utc_time. The conf.test_helpers value is copied verbatim into
// config.test_helpers. The fallback_script is currently always empty.
func UpgradeResponse(logger model.Logger, v1 *model.OOAPICheckInResultV1) (*model.OOAPICheckInResultV2, error) {
	if v1 == nil {
		return nil, &model.SchemaError{Document: v1ResponseDocument, Key: "."}
	}
	if v1.Conf == nil {
		return nil, &model.SchemaError{Document: v1ResponseDocument, Key: "conf"}
	}
	if len(v1.Conf.TestHelpers) == 0 {
		return nil, &model.SchemaError{Document: v1ResponseDocument, Key: "conf.test_helpers"}
	}
	if v1.Tests == nil {
		return nil, &model.SchemaError{Document: v1ResponseDocument, Key: "tests"}
	}
	if v1.UTCTime == "" {
		return nil, &model.SchemaError{Document: v1ResponseDocument, Key: "utc_time"}
	}
	v2 := &model.OOAPICheckInResultV2{
		Config: must.MarshalJSON(&model.OOAPICheckInResultConfigV2{
			TestHelpers: v1.Conf.TestHelpers,
		}),
		MainScript:     NewMainScript(logger, v1.Tests),
		FallbackScript: []model.ScriptCommand{},
		UTCTime:        v1.UTCTime,
		V:              must.MarshalJSON(model.OOAPICheckInResultVersion2),
	}
	return v2, nil
}
