package checkinv2

import (
	"encoding/json"

	"github.com/ooni/checkinv2/internal/model"
)

// NewMainScript generates the main script for the given nettests entries
// of a check-in v1 response using the default [Suites].
func NewMainScript(logger model.Logger, tests map[string]*model.OOAPICheckInNettestV1) []model.ScriptCommand {
	return NewScript(logger, Suites, tests)
}

// NewScript generates a script running the given suites in order. Each suite
// starts with ui/set_suite and, when it contains nettests, ends with a
// ui/set_progress_bar_value command setting the progress bar to 1. Each
// nettest inside tests gets a ui/set_progress_bar_range command followed by
// a nettest/run command. Nettests missing from tests, or whose entry is null
// or empty, are skipped with a warning, but they still consume their share
// of the progress bar.
func NewScript(
	logger model.Logger, suites []Suite, tests map[string]*model.OOAPICheckInNettestV1) []model.ScriptCommand {
	script := []model.ScriptCommand{}
	for _, suite := range suites {
		// append the initial command setting the suite
		script = append(script, model.NewScriptCommand(
			model.ScriptCommandUISetSuite,
			&model.UISetSuiteArguments{
				SuiteName: suite.Name,
			},
		))

		// compute how the progress bar should make progress
		if len(suite.Nettests) <= 0 {
			continue
		}
		increment := 1 / float64(len(suite.Nettests))
		currentMinimum := float64(0)
		currentMaximum := increment

		// generate an entry for each nettest
		for _, nettestName := range suite.Nettests {
			if entry := tests[nettestName]; !nettestEntryIsEmpty(entry) {
				// position the progress bar correctly
				script = append(script, model.NewScriptCommand(
					model.ScriptCommandUISetProgressBarRange,
					&model.UISetProgressBarRangeArguments{
						InitialValue: currentMinimum,
						MaxValue:     currentMaximum,
						SuiteName:    suite.Name,
					},
				))

				// create the command running the nettest
				script = append(script, model.NewScriptCommand(
					model.ScriptCommandNettestRun,
					&model.NettestRunArguments{
						ExperimentalFlags: map[string]bool{},
						NettestName:       nettestName,
						ReportID:          entry.ReportID,
						SuiteName:         suite.Name,
						Targets:           newNettestTargets(nettestName, entry),
					},
				))

			} else {
				logger.Warnf("cannot find %s in v1 response", nettestName)
			}

			// move forward the progress bar
			currentMinimum = currentMaximum
			currentMaximum += increment
		}

		// make sure the progress bar is always at 100% after
		// we have run a given nettest suite
		script = append(script, model.NewScriptCommand(
			model.ScriptCommandUISetProgressBarValue,
			&model.UISetProgressBarValueArguments{
				SuiteName: suite.Name,
				Value:     1,
			},
		))
	}
	return script
}

// nettestEntryIsEmpty returns whether entry is nil or carries neither
// a report ID nor URLs, as is the case for a literal {} entry.
func nettestEntryIsEmpty(entry *model.OOAPICheckInNettestV1) bool {
	return entry == nil || (entry.ReportID == "" && len(entry.URLs) == 0)
}

// newNettestTargets returns the targets for the given nettest.
//
// TODO: generate targets for nettests other than web_connectivity
// once the richer input implementation supports them.
func newNettestTargets(nettestName string, entry *model.OOAPICheckInNettestV1) []json.RawMessage {
	if nettestName == "web_connectivity" && entry.URLs != nil {
		return entry.URLs
	}
	return []json.RawMessage{}
}
