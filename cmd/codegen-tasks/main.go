package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codegen-tasks/internal"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

func buildRootCommand(defaultController entities.Controller) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "codegen-tasks",
		Short: "Bootstrap codegen tasks for Next.js and Prisma projects",
		Long: `Runs once during a project's build or dev bootstrap to reconcile installed
dependencies with the application:

  - patches the installed Next.js client with a React Suspense fix, picking
    the one patch that matches the declared Next.js version;
  - generates the routes manifest;
  - generates the Prisma client, only when it is missing or stale.

Usage modes:
  codegen-tasks             Run every task (same as "run")
  codegen-tasks patch       Only patch Next.js
  codegen-tasks generate    Only generate the manifest and Prisma client`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          defaultController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("dir", "d", ".",
		"Project directory holding package.json and node_modules")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	container := newContainer()
	cobraRoot := buildRootCommand(injectRunController(container))

	// Add all subcommands
	addSubcommands(cobraRoot, injectAppContext(container))

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'codegen-tasks': %s", err)
	}
}
