package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// Generate is the interface for the conditional client regeneration step.
type Generate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts GenerateOptions) (entities.Outcome, error)
}

// GenerateOptions holds runtime options for the regeneration step.
type GenerateOptions struct {
	ProjectDir string
	DryRun     bool
}

// GenerateCommand regenerates the ORM client only when it is missing or one
// of its existence signals is absent.
type GenerateCommand struct {
	resolver    repositories.DependencyResolver
	descriptors repositories.PackageDescriptorRepository
	files       repositories.FileRepository
	runner      repositories.CodegenRunner
	reporter    repositories.Reporter
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	resolver repositories.DependencyResolver,
	descriptors repositories.PackageDescriptorRepository,
	files repositories.FileRepository,
	runner repositories.CodegenRunner,
	reporter repositories.Reporter,
) *GenerateCommand {
	return &GenerateCommand{
		resolver:    resolver,
		descriptors: descriptors,
		files:       files,
		runner:      runner,
		reporter:    reporter,
	}
}

// Execute returns a fatal outcome when generation was attempted and failed.
// The returned error covers inspection failures only, which are not fatal.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts GenerateOptions,
) (entities.Outcome, error) {
	cfg := settings.Regenerate

	descriptor, err := it.descriptors.Read(opts.ProjectDir)
	if err != nil {
		return entities.Outcome{}, fmt.Errorf("failed to read package descriptor: %w", err)
	}

	if !descriptor.Declares(cfg.Package) {
		logger.Debugf("[prisma] %s is not declared, skipping client generation", cfg.Package)
		return entities.Outcome{}, nil
	}

	state := it.inspect(opts.ProjectDir, cfg)
	logger.Debugf(
		"[prisma] client resolved: %v, marker dir: %v, marker resolved: %v",
		state.ClientResolved, state.MarkerDirExists, state.MarkerResolved,
	)
	if state.IsFresh() {
		logger.Debugf("[prisma] %s is already generated", cfg.ClientPackage)
		return entities.Outcome{}, nil
	}

	if opts.DryRun {
		logger.Infof("[prisma] [DRY RUN] Would run %s %s", cfg.Command, strings.Join(cfg.Args, " "))
		return entities.Outcome{}, nil
	}

	return it.regenerate(ctx, opts.ProjectDir, cfg), nil
}

// inspect computes the freshness signals from the project directory.
func (it *GenerateCommand) inspect(projectDir string, cfg entities.RegenerateSettings) entities.ArtifactState {
	var state entities.ArtifactState

	clientEntry, clientFound := it.resolver.Resolve(projectDir, cfg.ClientPackage)
	if !clientFound {
		return state
	}
	state.ClientResolved = true

	// <node_modules>/@prisma/client/index.js -> <node_modules>/.prisma
	markerDir := filepath.Join(clientEntry, "..", "..", "..", cfg.MarkerDir)
	if !it.files.DirExists(markerDir) {
		return state
	}
	state.MarkerDirExists = true

	if cfg.MarkerPackage == "" {
		state.MarkerResolved = true
		return state
	}
	_, state.MarkerResolved = it.resolver.Resolve(projectDir, cfg.MarkerPackage)
	return state
}

// regenerate runs the generator. Any failure, whether reported by the command
// or raised while starting it, is fatal.
func (it *GenerateCommand) regenerate(
	ctx context.Context,
	projectDir string,
	cfg entities.RegenerateSettings,
) entities.Outcome {
	spinner := it.reporter.Spinner("Generating Prisma client").Start()

	result, err := it.runner.Run(ctx, projectDir, cfg.Command, cfg.Args)
	if err != nil {
		spinner.Fail()
		it.reporter.Error(err.Error())
		return entities.FatalOutcome(err.Error(), "")
	}

	if !result.Success {
		spinner.Fail()
		it.reporter.Error("\n" + result.Stderr)
		return entities.FatalOutcome(cfg.Command+" "+strings.Join(cfg.Args, " ")+" failed", result.Stderr)
	}

	spinner.Succeed("Generated Prisma client")
	return entities.Outcome{}
}
