//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// StubRunCommand is a stub implementation of commands.Run.
type StubRunCommand struct {
	ExecuteCallCount int
	Outcome          entities.Outcome
	LastSettings     *entities.Settings
	LastOpts         commands.RunOptions
}

var _ commands.Run = (*StubRunCommand)(nil)

func (s *StubRunCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.RunOptions,
) entities.Outcome {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Outcome
}
