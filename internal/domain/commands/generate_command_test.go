//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codegen-tasks/internal/domain/commands"
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
	"github.com/rios0rios0/codegen-tasks/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/codegen-tasks/test/infrastructure/repositorydoubles"
)

const clientEntry = "/app/node_modules/@prisma/client/index.js"

//nolint:gochecknoglobals // test fixture
var markerDir = filepath.Join(clientEntry, "..", "..", "..", ".prisma")

type generateFixture struct {
	resolver    *doubles.StubDependencyResolver
	descriptors *doubles.StubPackageDescriptorRepository
	files       *doubles.InMemoryFileRepository
	runner      *doubles.SpyCodegenRunner
	reporter    *doubles.SpyReporter
	command     *commands.GenerateCommand
}

// newGenerateFixture declares prisma and installs a fully generated client.
func newGenerateFixture() *generateFixture {
	fixture := &generateFixture{
		resolver: &doubles.StubDependencyResolver{Entries: map[string]string{
			"@prisma/client": clientEntry,
			".prisma/client": "/app/node_modules/.prisma/client/index.js",
		}},
		descriptors: &doubles.StubPackageDescriptorRepository{
			Descriptor: entitybuilders.NewPackageDescriptorBuilder().
				WithDependency("prisma", "^5.0.0").
				BuildPackageDescriptor(),
		},
		files:    &doubles.InMemoryFileRepository{Dirs: map[string]bool{markerDir: true}},
		runner:   &doubles.SpyCodegenRunner{},
		reporter: &doubles.SpyReporter{},
	}
	fixture.command = commands.NewGenerateCommand(
		fixture.resolver,
		fixture.descriptors,
		fixture.files,
		fixture.runner,
		fixture.reporter,
	)
	return fixture
}

func (f *generateFixture) execute(opts commands.GenerateOptions) (entities.Outcome, error) {
	if opts.ProjectDir == "" {
		opts.ProjectDir = "/app"
	}
	return f.command.Execute(context.Background(), entities.NewDefaultSettings(), opts)
}

func TestGenerateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should never invoke the generator when prisma is not declared", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.descriptors.Descriptor = entitybuilders.NewPackageDescriptorBuilder().
			WithDependency("next", "13.4.0").
			BuildPackageDescriptor()
		fixture.resolver.Entries = map[string]string{}

		// when
		outcome, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.False(t, outcome.Fatal)
		assert.Empty(t, fixture.runner.Calls)
		assert.Empty(t, fixture.resolver.Requests)
	})

	t.Run("should never invoke the generator when every artifact is present", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()

		// when
		outcome, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.False(t, outcome.Fatal)
		assert.Empty(t, fixture.runner.Calls)
		assert.Empty(t, fixture.reporter.Spinners)
	})

	t.Run("should generate once when the client is missing", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.resolver.Entries = map[string]string{}

		// when
		outcome, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.False(t, outcome.Fatal)
		require.Len(t, fixture.runner.Calls, 1)
		assert.Equal(t, doubles.CodegenCall{
			ProjectDir: "/app",
			Command:    "prisma",
			Args:       []string{"generate"},
		}, fixture.runner.Calls[0])
		require.Len(t, fixture.reporter.Spinners, 1)
		spinner := fixture.reporter.Spinners[0]
		assert.Equal(t, "Generating Prisma client", spinner.Message)
		assert.True(t, spinner.Started)
		assert.Equal(t, "Generated Prisma client", spinner.Succeeded)
		assert.False(t, spinner.Failed)
	})

	t.Run("should generate when prisma is only a dev dependency", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.descriptors.Descriptor = entitybuilders.NewPackageDescriptorBuilder().
			WithDevDependency("prisma", "5.4.2").
			BuildPackageDescriptor()
		fixture.resolver.Entries = map[string]string{}

		// when
		_, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.Len(t, fixture.runner.Calls, 1)
	})

	t.Run("should generate when the marker directory is missing", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.files.Dirs = map[string]bool{}

		// when
		_, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.Len(t, fixture.runner.Calls, 1)
		assert.Equal(t, []string{"@prisma/client"}, fixture.resolver.Requests)
	})

	t.Run("should generate when the marker does not resolve on its own", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		delete(fixture.resolver.Entries, ".prisma/client")

		// when
		_, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.Len(t, fixture.runner.Calls, 1)
		assert.Equal(t, []string{"@prisma/client", ".prisma/client"}, fixture.resolver.Requests)
	})

	t.Run("should return a fatal outcome and echo stderr when generation fails", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.resolver.Entries = map[string]string{}
		fixture.runner.Result = &entities.CodegenResult{Success: false, Stderr: "boom"}

		// when
		outcome, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, outcome.Fatal)
		assert.Equal(t, "boom", outcome.Stderr)
		require.ErrorIs(t, outcome.Err(), entities.ErrGenerationFailed)
		assert.Equal(t, []string{"\nboom"}, fixture.reporter.Errors)
		assert.True(t, fixture.reporter.Spinners[0].Failed)
		assert.Empty(t, fixture.reporter.Spinners[0].Succeeded)
	})

	t.Run("should return a fatal outcome when the generator cannot start", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.resolver.Entries = map[string]string{}
		fixture.runner.RunErr = errors.New(`executable "prisma" not found`)

		// when
		outcome, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, outcome.Fatal)
		assert.Equal(t, []string{`executable "prisma" not found`}, fixture.reporter.Errors)
		assert.True(t, fixture.reporter.Spinners[0].Failed)
	})

	t.Run("should not invoke the generator in dry run mode", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.resolver.Entries = map[string]string{}

		// when
		outcome, err := fixture.execute(commands.GenerateOptions{DryRun: true})

		// then
		require.NoError(t, err)
		assert.False(t, outcome.Fatal)
		assert.Empty(t, fixture.runner.Calls)
	})

	t.Run("should return a non-fatal error when package.json cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.descriptors.ReadErr = errors.New("no such file or directory")

		// when
		outcome, err := fixture.execute(commands.GenerateOptions{})

		// then
		require.ErrorContains(t, err, "failed to read package descriptor")
		assert.False(t, outcome.Fatal)
		assert.Empty(t, fixture.runner.Calls)
	})
}
