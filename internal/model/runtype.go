package model

// RunType describes the type of a check-in run.
type RunType string

const (
	// RunTypeManual indicates that the user manually started the run. Command
	// line tools such as checkin should always use this run type.
	RunTypeManual = RunType("manual")

	// RunTypeTimed indicates that the run was started by a scheduler, which
	// is also what the backend expects when we are only geolocating.
	RunTypeTimed = RunType("timed")
)
