// Package makescript flattens a check-in v2 response into the
// interpreter script that a probe executes.
package makescript

import (
	"encoding/json"
	"os"

	"github.com/ooni/checkinv2/internal/model"
	"github.com/tailscale/hujson"
)

// v2ResponseDocument is the document name used by [*model.SchemaError].
const v2ResponseDocument = "check-in v2 response"

// Flatten returns the interpreter script corresponding to the main script
// of the given check-in v2 response. This function returns a
// [*model.SchemaError] if the response lacks config, main_script, or v. The
// config and v values are copied verbatim, so a literal zero v is fine.
func Flatten(v2 *model.OOAPICheckInResultV2) (*model.InterpreterScript, error) {
	if v2 == nil {
		return nil, &model.SchemaError{Document: v2ResponseDocument, Key: "."}
	}
	if len(v2.Config) == 0 {
		return nil, &model.SchemaError{Document: v2ResponseDocument, Key: "config"}
	}
	if v2.MainScript == nil {
		return nil, &model.SchemaError{Document: v2ResponseDocument, Key: "main_script"}
	}
	if len(v2.V) == 0 {
		return nil, &model.SchemaError{Document: v2ResponseDocument, Key: "v"}
	}
	script := &model.InterpreterScript{
		Config:   v2.Config,
		Commands: v2.MainScript,
		V:        v2.V,
	}
	return script, nil
}

// ParseCheckInV2Response parses a check-in v2 response. We accept JSON
// with comments and trailing commas, since stored responses are
// sometimes edited by hand.
func ParseCheckInV2Response(data []byte) (*model.OOAPICheckInResultV2, error) {
	data, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	var v2 model.OOAPICheckInResultV2
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, err
	}
	return &v2, nil
}

// LoadCheckInV2Response reads and parses the check-in v2 response
// stored inside the given file.
func LoadCheckInV2Response(filename string) (*model.OOAPICheckInResultV2, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseCheckInV2Response(data)
}

// LoadAndFlatten combines [LoadCheckInV2Response] and [Flatten].
func LoadAndFlatten(filename string) (*model.InterpreterScript, error) {
	v2, err := LoadCheckInV2Response(filename)
	if err != nil {
		return nil, err
	}
	return Flatten(v2)
}
