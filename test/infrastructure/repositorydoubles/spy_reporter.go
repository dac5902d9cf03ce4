//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// SpyReporter records every message, including spinner transitions.
type SpyReporter struct {
	Successes []string
	Errors    []string
	Spinners  []*SpySpinner
}

var _ repositories.Reporter = (*SpyReporter)(nil)

func (r *SpyReporter) Success(message string) { r.Successes = append(r.Successes, message) }

func (r *SpyReporter) Error(message string) { r.Errors = append(r.Errors, message) }

func (r *SpyReporter) Spinner(message string) repositories.Spinner {
	spinner := &SpySpinner{Message: message}
	r.Spinners = append(r.Spinners, spinner)
	return spinner
}

// SpySpinner records how a spinner was driven.
type SpySpinner struct {
	Message   string
	Started   bool
	Succeeded string
	Failed    bool
}

var _ repositories.Spinner = (*SpySpinner)(nil)

func (s *SpySpinner) Start() repositories.Spinner {
	s.Started = true
	return s
}

func (s *SpySpinner) Succeed(message string) { s.Succeeded = message }

func (s *SpySpinner) Fail() { s.Failed = true }
