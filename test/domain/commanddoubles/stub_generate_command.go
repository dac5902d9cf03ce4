//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// StubGenerateCommand is a stub implementation of commands.Generate.
type StubGenerateCommand struct {
	ExecuteCallCount int
	Outcome          entities.Outcome
	ExecuteErr       error
	LastOpts         commands.GenerateOptions
}

var _ commands.Generate = (*StubGenerateCommand)(nil)

func (s *StubGenerateCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.GenerateOptions,
) (entities.Outcome, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Outcome, s.ExecuteErr
}
