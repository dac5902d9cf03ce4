package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// Patch is the interface for the vendored-file patch step.
type Patch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PatchOptions) error
}

// PatchOptions holds runtime options for the patch step.
type PatchOptions struct {
	ProjectDir string
	DryRun     bool
}

// PatchCommand applies at most one rule of the patch table to the file
// installed by the target package, chosen by its declared version.
type PatchCommand struct {
	resolver    repositories.DependencyResolver
	descriptors repositories.PackageDescriptorRepository
	files       repositories.FileRepository
	reporter    repositories.Reporter
	rules       entities.PatchRules
}

// NewPatchCommand creates a new PatchCommand.
func NewPatchCommand(
	resolver repositories.DependencyResolver,
	descriptors repositories.PackageDescriptorRepository,
	files repositories.FileRepository,
	reporter repositories.Reporter,
	rules entities.PatchRules,
) *PatchCommand {
	return &PatchCommand{
		resolver:    resolver,
		descriptors: descriptors,
		files:       files,
		reporter:    reporter,
		rules:       rules,
	}
}

// Execute selects and applies the patch. An uninstalled package, an
// undeclared or unparseable version, or a version outside every range is
// not an error: the target file is left untouched.
func (it *PatchCommand) Execute(_ context.Context, settings *entities.Settings, opts PatchOptions) error {
	pkg := settings.Patch.Package

	entry, found := it.resolver.Resolve(opts.ProjectDir, pkg)
	if !found {
		logger.Debugf("[patch] %s is not installed, nothing to patch", pkg)
		return nil
	}
	target := patchTargetPath(entry, settings.Patch.Target)
	logger.Infof("[patch] Patch target: %s", target)

	rule, selected, err := it.selectRule(opts.ProjectDir, pkg)
	if err != nil || !selected {
		return err
	}
	logger.Debugf("[patch] Selected rule %q (%s)", rule.Name, rule.Range)

	content, err := it.files.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to read patch target: %w", err)
	}

	original := string(content)
	if rule.IsApplied(original) {
		logger.Infof("[patch] %s is already patched, skipping", target)
		return nil
	}

	patched := rule.Transform(original)
	if patched == original {
		logger.Warnf("[patch] Rule %q did not match anything in %s, leaving it untouched", rule.Name, target)
		return nil
	}

	if opts.DryRun {
		logger.Infof("[patch] [DRY RUN] Would apply rule %q to %s", rule.Name, target)
		return nil
	}

	if writeErr := it.files.WriteFile(target, []byte(patched)); writeErr != nil {
		return fmt.Errorf("failed to write patch target: %w", writeErr)
	}

	it.reporter.Success("Next.js was successfully patched with a React Suspense fix")
	return nil
}

// selectRule normalizes the declared constraint of pkg and returns the rule
// for it. Versions that cannot be normalized select nothing.
func (it *PatchCommand) selectRule(projectDir, pkg string) (entities.PatchRule, bool, error) {
	descriptor, err := it.descriptors.Read(projectDir)
	if err != nil {
		return entities.PatchRule{}, false, fmt.Errorf("failed to read package descriptor: %w", err)
	}

	constraint, declared := descriptor.Constraint(pkg)
	if !declared {
		logger.Debugf("[patch] %s is not a declared dependency, nothing to patch", pkg)
		return entities.PatchRule{}, false, nil
	}

	version, err := entities.NormalizeVersion(constraint)
	if err != nil {
		logger.Debugf("[patch] Version %q of %s is unusable (%v), nothing to patch", constraint, pkg, err)
		return entities.PatchRule{}, false, nil
	}

	rule, selected := it.rules.Select(version)
	if !selected {
		logger.Debugf("[patch] No rule covers %s %s", pkg, version)
	}
	return rule, selected, nil
}

// patchTargetPath resolves target relative to the package's entry file.
func patchTargetPath(entry, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(entry, target)
}
