//go:build unit

package nodebin_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codegen-tasks/internal/infrastructure/repositories/nodebin"
)

// installBin links a shell script as node_modules/.bin/<name> under dir.
func installBin(t *testing.T, dir, name, script string) {
	t.Helper()
	binDir := filepath.Join(dir, "node_modules", ".bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\n"+script+"\n"), 0o755)) //nolint:gosec // test executable
}

func TestCodegenRunnerRun(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("shell script executables are not supported on windows")
	}

	t.Run("should run the project executable with the given arguments", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		installBin(t, dir, "prisma", `echo "$@" > args.txt; echo warning >&2`)
		runner := nodebin.NewCodegenRunner(afero.NewOsFs())

		// when
		result, err := runner.Run(context.Background(), dir, "prisma", []string{"generate"})

		// then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "warning\n", result.Stderr)
		args, readErr := os.ReadFile(filepath.Join(dir, "args.txt"))
		require.NoError(t, readErr)
		assert.Equal(t, "generate\n", string(args))
	})

	t.Run("should find the executable of a parent workspace", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		project := filepath.Join(root, "apps", "web")
		require.NoError(t, os.MkdirAll(project, 0o755))
		installBin(t, root, "prisma", "pwd > cwd.txt")
		runner := nodebin.NewCodegenRunner(afero.NewOsFs())

		// when
		result, err := runner.Run(context.Background(), project, "prisma", nil)

		// then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.FileExists(t, filepath.Join(project, "cwd.txt"))
	})

	t.Run("should return an unsuccessful result with stderr on a non-zero exit", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		installBin(t, dir, "prisma", "echo boom >&2; exit 1")
		runner := nodebin.NewCodegenRunner(afero.NewOsFs())

		// when
		result, err := runner.Run(context.Background(), dir, "prisma", []string{"generate"})

		// then
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "boom\n", result.Stderr)
	})

	t.Run("should fail when the executable is nowhere to be found", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		runner := nodebin.NewCodegenRunner(afero.NewOsFs())

		// when
		result, err := runner.Run(context.Background(), dir, "codegen-tasks-missing-binary", nil)

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "is not installed")
	})
}
