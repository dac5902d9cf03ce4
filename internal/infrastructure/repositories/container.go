package repositories

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
	"github.com/rios0rios0/codegen-tasks/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/codegen-tasks/internal/infrastructure/repositories/manifest"
	"github.com/rios0rios0/codegen-tasks/internal/infrastructure/repositories/node"
	"github.com/rios0rios0/codegen-tasks/internal/infrastructure/repositories/nodebin"
	"github.com/rios0rios0/codegen-tasks/internal/infrastructure/repositories/packagejson"
	"github.com/rios0rios0/codegen-tasks/internal/infrastructure/repositories/reporter"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Every repository works on the real filesystem
	if err := container.Provide(afero.NewOsFs); err != nil {
		return err
	}

	providers := []any{
		func(fs afero.Fs) domainRepos.DependencyResolver {
			return node.NewDependencyResolver(fs)
		},
		func(fs afero.Fs) domainRepos.PackageDescriptorRepository {
			return packagejson.NewPackageDescriptorRepository(fs)
		},
		func(fs afero.Fs) domainRepos.FileRepository {
			return filesystem.NewFileRepository(fs)
		},
		func(fs afero.Fs) domainRepos.CodegenRunner {
			return nodebin.NewCodegenRunner(fs)
		},
		func() domainRepos.ManifestGenerator {
			return manifest.NewShellManifestGenerator()
		},
		func() domainRepos.Reporter {
			return reporter.NewLogrusReporter(logger.StandardLogger())
		},
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}
