package repositories

import (
	"context"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// CodegenRunner invokes an external code generation command.
type CodegenRunner interface {
	// Run returns a result whenever the command ran to completion, whatever
	// its exit status. An error means the command could not be run at all.
	Run(ctx context.Context, projectDir, command string, args []string) (*entities.CodegenResult, error)
}
