package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// RunController handles the "run" subcommand, which is also the default.
type RunController struct {
	command commands.Run
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Run every bootstrap codegen task",
		Long: `Patch the installed Next.js client for the React Suspense fix, generate
the routes manifest, and generate the Prisma client when it is missing.

A failure in the patch step never prevents generation. Only a failed
Prisma client generation makes the command exit with a non-zero status.`,
	}
}

// Execute runs both pipelines.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	return execute(cmd, it.command, true, true)
}
