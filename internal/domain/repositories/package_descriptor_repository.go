package repositories

import "github.com/rios0rios0/codegen-tasks/internal/domain/entities"

// PackageDescriptorRepository reads the host project's declared dependencies.
type PackageDescriptorRepository interface {
	Read(projectDir string) (*entities.PackageDescriptor, error)
}
