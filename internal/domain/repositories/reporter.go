package repositories

// Reporter is the user-facing output of a run. It never affects control flow.
type Reporter interface {
	Success(message string)
	Error(message string)
	Spinner(message string) Spinner
}

// Spinner reports the progress of one long-running step.
type Spinner interface {
	Start() Spinner
	Succeed(message string)
	Fail()
}
