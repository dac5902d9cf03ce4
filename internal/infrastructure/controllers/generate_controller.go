package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// GenerateController handles the "generate" subcommand.
type GenerateController struct {
	command commands.Run
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Run) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate",
		Short: "Generate the routes manifest and, if stale, the Prisma client",
	}
}

// Execute runs the generation pipeline only.
func (it *GenerateController) Execute(cmd *cobra.Command, _ []string) error {
	return execute(cmd, it.command, false, true)
}
