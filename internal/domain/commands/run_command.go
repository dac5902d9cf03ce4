package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

const (
	pipelinePatch    = "patch"
	pipelineGenerate = "generate"
)

// ErrPipelinePanicked wraps a panic recovered at a pipeline boundary.
var ErrPipelinePanicked = errors.New("pipeline panicked")

// Run is the interface for a bootstrap run.
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) entities.Outcome
}

// RunOptions holds runtime options for a bootstrap run.
type RunOptions struct {
	ProjectDir string
	DryRun     bool
	Patch      bool // run the patch pipeline
	Generate   bool // run the manifest and client generation pipeline
}

// RunCommand runs the two pipelines in order, each behind its own failure
// boundary, so that a failure in one never stops the other.
type RunCommand struct {
	patch    Patch
	generate Generate
	manifest repositories.ManifestGenerator
	reporter repositories.Reporter
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(
	patch Patch,
	generate Generate,
	manifest repositories.ManifestGenerator,
	reporter repositories.Reporter,
) *RunCommand {
	return &RunCommand{
		patch:    patch,
		generate: generate,
		manifest: manifest,
		reporter: reporter,
	}
}

// Execute never returns pipeline errors: they are reported and the run goes
// on. Only a failed client generation yields a fatal outcome.
func (it *RunCommand) Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) entities.Outcome {
	if opts.Patch && settings.Patch.Enabled {
		it.boundary(pipelinePatch, func() error {
			return it.patch.Execute(ctx, settings, PatchOptions{
				ProjectDir: opts.ProjectDir,
				DryRun:     opts.DryRun,
			})
		})
	}

	var outcome entities.Outcome
	if opts.Generate {
		it.boundary(pipelineGenerate, func() error {
			var err error
			outcome, err = it.generateAll(ctx, settings, opts)
			return err
		})
	}

	return outcome
}

func (it *RunCommand) generateAll(
	ctx context.Context,
	settings *entities.Settings,
	opts RunOptions,
) (entities.Outcome, error) {
	if err := it.manifest.Generate(ctx, opts.ProjectDir, settings.Manifest.Command); err != nil {
		return entities.Outcome{}, fmt.Errorf("failed to generate routes manifest: %w", err)
	}
	it.reporter.Success("Routes manifest was successfully generated")

	if !settings.Regenerate.Enabled {
		return entities.Outcome{}, nil
	}

	return it.generate.Execute(ctx, settings, GenerateOptions{
		ProjectDir: opts.ProjectDir,
		DryRun:     opts.DryRun,
	})
}

// boundary runs fn and reports its error, or a recovered panic, as non-fatal.
func (it *RunCommand) boundary(pipeline string, fn func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPipelinePanicked, r)
			}
		}()
		return fn()
	}()

	if err != nil {
		logger.WithField("pipeline", pipeline).Debugf("pipeline failed: %v", err)
		it.reporter.Error(fmt.Sprintf("[%s] %v", pipeline, err))
	}
}
