//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// StubPatchCommand is a stub implementation of commands.Patch.
type StubPatchCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	ExecutePanic     any
	LastOpts         commands.PatchOptions
}

var _ commands.Patch = (*StubPatchCommand)(nil)

func (s *StubPatchCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.PatchOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecutePanic != nil {
		panic(s.ExecutePanic)
	}
	return s.ExecuteErr
}
