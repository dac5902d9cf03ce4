package entities

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed marks a run whose client generation failed. It is the
// only failure that makes the process exit with a non-zero status.
var ErrGenerationFailed = errors.New("client generation failed")

// Outcome is the result of a whole run, returned to the CLI entry point.
type Outcome struct {
	Fatal  bool
	Reason string
	Stderr string
}

// FatalOutcome builds the outcome of a failed generation.
func FatalOutcome(reason, stderr string) Outcome {
	return Outcome{Fatal: true, Reason: reason, Stderr: stderr}
}

// Err converts a fatal outcome into an error wrapping ErrGenerationFailed.
func (it Outcome) Err() error {
	if !it.Fatal {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrGenerationFailed, it.Reason)
}
