//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// SpyCodegenRunner records invocations and returns a configured result.
type SpyCodegenRunner struct {
	Result *entities.CodegenResult
	RunErr error
	Calls  []CodegenCall
}

// CodegenCall records a single invocation of Run.
type CodegenCall struct {
	ProjectDir string
	Command    string
	Args       []string
}

var _ repositories.CodegenRunner = (*SpyCodegenRunner)(nil)

func (s *SpyCodegenRunner) Run(
	_ context.Context,
	projectDir, command string,
	args []string,
) (*entities.CodegenResult, error) {
	s.Calls = append(s.Calls, CodegenCall{ProjectDir: projectDir, Command: command, Args: args})
	if s.RunErr != nil {
		return nil, s.RunErr
	}
	if s.Result == nil {
		return &entities.CodegenResult{Success: true}, nil
	}
	return s.Result, nil
}
