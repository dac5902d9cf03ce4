package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// loadSettings reads the persistent flags and the settings they point to.
// Without --config, an auto-detected file is used, or the built-in defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, commands.RunOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	projectDir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if projectDir == "" {
		projectDir = "."
	}
	opts := commands.RunOptions{ProjectDir: projectDir, DryRun: dryRun}

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found (%v), using defaults", err)
			return entities.NewDefaultSettings(), opts, nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, opts, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, opts, nil
}

// execute runs the selected pipelines and converts a fatal outcome into the
// error that makes the process exit non-zero.
func execute(cmd *cobra.Command, command commands.Run, patch, generate bool) error {
	settings, opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts.Patch = patch
	opts.Generate = generate
	return command.Execute(ctx, settings, opts).Err()
}
