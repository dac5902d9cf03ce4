package nodebin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

// binDir is where package managers link the executables of installed packages.
var binDir = filepath.Join("node_modules", ".bin")

// CodegenRunner runs a package executable, preferring the copy installed in
// the project over one found on PATH.
type CodegenRunner struct {
	fs afero.Fs
}

// NewCodegenRunner creates a runner that looks executables up on fs.
func NewCodegenRunner(fs afero.Fs) *CodegenRunner {
	return &CodegenRunner{fs: fs}
}

// Run executes command with args in projectDir. Stdout is only logged at
// debug level; stderr is captured into the result.
func (it *CodegenRunner) Run(
	ctx context.Context,
	projectDir, command string,
	args []string,
) (*entities.CodegenResult, error) {
	executable, err := it.lookup(projectDir, command)
	if err != nil {
		return nil, err
	}
	logger.Debugf("[prisma] Running %s %s", executable, strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Dir = projectDir
	cmd.Env = os.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if stdout.Len() > 0 {
		logger.Debugf("[prisma] Output:\n%s", stdout.String())
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return &entities.CodegenResult{Success: false, Stderr: stderr.String()}, nil
	}
	if runErr != nil {
		return nil, fmt.Errorf("failed to run %s: %w", command, runErr)
	}
	return &entities.CodegenResult{Success: true, Stderr: stderr.String()}, nil
}

// lookup walks up from projectDir looking for node_modules/.bin/<command>,
// then falls back to PATH.
func (it *CodegenRunner) lookup(projectDir, command string) (string, error) {
	if strings.ContainsRune(command, filepath.Separator) {
		return command, nil
	}

	dir, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("invalid project directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, binDir, command)
		if info, statErr := it.fs.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	path, err := exec.LookPath(command)
	if err != nil {
		return "", fmt.Errorf("%s is not installed in %s nor on PATH: %w", command, projectDir, err)
	}
	return path, nil
}
