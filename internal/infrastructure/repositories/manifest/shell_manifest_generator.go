package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellManifestGenerator runs the configured manifest script with an
// in-process POSIX shell, so it behaves the same on every platform.
type ShellManifestGenerator struct{}

// NewShellManifestGenerator creates a new ShellManifestGenerator.
func NewShellManifestGenerator() *ShellManifestGenerator {
	return &ShellManifestGenerator{}
}

// Generate runs script in projectDir. An empty script is a no-op.
func (it *ShellManifestGenerator) Generate(ctx context.Context, projectDir, script string) error {
	if strings.TrimSpace(script) == "" {
		logger.Debug("[manifest] No manifest command configured, skipping")
		return nil
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "manifest")
	if err != nil {
		return fmt.Errorf("failed to parse manifest command: %w", err)
	}

	var stdout, stderr strings.Builder
	runner, err := interp.New(
		interp.Dir(projectDir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, &stdout, &stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	logger.Debugf("[manifest] Running %q in %s", script, projectDir)
	runErr := runner.Run(ctx, prog)
	if stdout.Len() > 0 {
		logger.Debugf("[manifest] Output:\n%s", stdout.String())
	}
	if runErr != nil {
		var exitStatus interp.ExitStatus
		if errors.As(runErr, &exitStatus) {
			return fmt.Errorf("manifest command exited with status %d: %s",
				int(exitStatus), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("manifest command failed: %w", runErr)
	}
	return nil
}
