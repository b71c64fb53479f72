package model

//
// Interpreter script data model.
//

import (
	"encoding/json"

	"github.com/ooni/checkinv2/internal/runtimex"
)

const (
	// ScriptCommandUISetSuite sets the current suite name.
	ScriptCommandUISetSuite = "ui/set_suite"

	// ScriptCommandUISetProgressBarRange sets the region of the progress
	// bar covered by the next nettest.
	ScriptCommandUISetProgressBarRange = "ui/set_progress_bar_range"

	// ScriptCommandUISetProgressBarValue forces the progress bar value.
	ScriptCommandUISetProgressBarValue = "ui/set_progress_bar_value"

	// ScriptCommandNettestRun runs a nettest.
	ScriptCommandNettestRun = "nettest/run"
)

// ScriptCommand is a command inside an interpreter script. The shape
// of WithArguments depends on RunCommand. Commands run sequentially.
type ScriptCommand struct {
	// RunCommand is the command name (e.g., [ScriptCommandNettestRun]).
	RunCommand string `json:"run_command"`

	// WithArguments contains the command arguments.
	WithArguments json.RawMessage `json:"with_arguments"`
}

// NewScriptCommand creates a [ScriptCommand] serializing the given
// arguments, which must be JSON serializable.
func NewScriptCommand(name string, arguments any) ScriptCommand {
	data, err := json.Marshal(arguments)
	runtimex.PanicOnError(err, "json.Marshal failed")
	return ScriptCommand{
		RunCommand:    name,
		WithArguments: data,
	}
}

// UnmarshalArguments parses WithArguments into v.
func (sc *ScriptCommand) UnmarshalArguments(v any) error {
	return json.Unmarshal(sc.WithArguments, v)
}

// UISetSuiteArguments contains arguments for [ScriptCommandUISetSuite].
type UISetSuiteArguments struct {
	SuiteName string `json:"suite_name"`
}

// UISetProgressBarRangeArguments contains arguments for
// [ScriptCommandUISetProgressBarRange].
type UISetProgressBarRangeArguments struct {
	InitialValue float64 `json:"initial_value"`
	MaxValue     float64 `json:"max_value"`
	SuiteName    string  `json:"suite_name"`
}

// UISetProgressBarValueArguments contains arguments for
// [ScriptCommandUISetProgressBarValue].
type UISetProgressBarValueArguments struct {
	SuiteName string  `json:"suite_name"`
	Value     float64 `json:"value"`
}

// NettestRunArguments contains arguments for [ScriptCommandNettestRun].
type NettestRunArguments struct {
	// ExperimentalFlags contains experimental flags (currently always empty).
	ExperimentalFlags map[string]bool `json:"experimental_flags"`

	// NettestName is the name of the nettest to run.
	NettestName string `json:"nettest_name"`

	// ReportID is the report ID assigned by the backend.
	ReportID string `json:"report_id"`

	// SuiteName is the suite this nettest belongs to.
	SuiteName string `json:"suite_name"`

	// Targets contains the nettest targets, copied verbatim.
	Targets []json.RawMessage `json:"targets"`
}

// InterpreterScript is the flattened script a probe executes.
type InterpreterScript struct {
	// Config contains the global configuration, copied verbatim.
	Config json.RawMessage `json:"config"`

	// Commands contains the commands to execute in order.
	Commands []ScriptCommand `json:"commands"`

	// V is the version, copied verbatim.
	V json.RawMessage `json:"v"`
}
