//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"maps"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageDescriptorBuilder helps create test package descriptors with a fluent interface.
type PackageDescriptorBuilder struct {
	*testkit.BaseBuilder
	dependencies    map[string]string
	devDependencies map[string]string
}

// NewPackageDescriptorBuilder creates a builder for a project with no dependencies.
func NewPackageDescriptorBuilder() *PackageDescriptorBuilder {
	return &PackageDescriptorBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		dependencies:    map[string]string{},
		devDependencies: map[string]string{},
	}
}

// WithDependency declares a runtime dependency.
func (b *PackageDescriptorBuilder) WithDependency(name, constraint string) *PackageDescriptorBuilder {
	b.dependencies[name] = constraint
	return b
}

// WithDevDependency declares a development dependency.
func (b *PackageDescriptorBuilder) WithDevDependency(name, constraint string) *PackageDescriptorBuilder {
	b.devDependencies[name] = constraint
	return b
}

// Build creates the descriptor (satisfies testkit.Builder interface).
func (b *PackageDescriptorBuilder) Build() interface{} {
	return b.BuildPackageDescriptor()
}

// BuildPackageDescriptor creates the descriptor with a concrete return type.
func (b *PackageDescriptorBuilder) BuildPackageDescriptor() *entities.PackageDescriptor {
	return &entities.PackageDescriptor{
		Dependencies:    maps.Clone(b.dependencies),
		DevDependencies: maps.Clone(b.devDependencies),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageDescriptorBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.dependencies = map[string]string{}
	b.devDependencies = map[string]string{}
	return b
}

// Clone creates a deep copy of the PackageDescriptorBuilder.
func (b *PackageDescriptorBuilder) Clone() testkit.Builder {
	return &PackageDescriptorBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		dependencies:    maps.Clone(b.dependencies),
		devDependencies: maps.Clone(b.devDependencies),
	}
}
