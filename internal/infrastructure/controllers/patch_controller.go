package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// PatchController handles the "patch" subcommand.
type PatchController struct {
	command commands.Run
}

// NewPatchController creates a new PatchController.
func NewPatchController(command commands.Run) *PatchController {
	return &PatchController{command: command}
}

// GetBind returns the Cobra command metadata for the patch controller.
func (it *PatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "patch",
		Short: "Apply the React Suspense fix to the installed Next.js client",
		Long: `Select the patch matching the declared Next.js version and apply it to
next/dist/client/index.js. Nothing is written when no patch applies or the
file is already patched.`,
	}
}

// Execute runs the patch pipeline only.
func (it *PatchController) Execute(cmd *cobra.Command, _ []string) error {
	return execute(cmd, it.command, true, false)
}
