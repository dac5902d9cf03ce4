//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// StubPackageDescriptorRepository returns a configured descriptor or error.
type StubPackageDescriptorRepository struct {
	Descriptor *entities.PackageDescriptor
	ReadErr    error
	ReadCalls  int
}

var _ repositories.PackageDescriptorRepository = (*StubPackageDescriptorRepository)(nil)

func (s *StubPackageDescriptorRepository) Read(_ string) (*entities.PackageDescriptor, error) {
	s.ReadCalls++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if s.Descriptor == nil {
		return &entities.PackageDescriptor{}, nil
	}
	return s.Descriptor, nil
}
