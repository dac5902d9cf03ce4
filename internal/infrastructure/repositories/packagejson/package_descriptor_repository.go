package packagejson

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

const fileName = "package.json"

// PackageDescriptorRepository reads the package.json at the project root.
type PackageDescriptorRepository struct {
	fs afero.Fs
}

// NewPackageDescriptorRepository creates a repository reading from fs.
func NewPackageDescriptorRepository(fs afero.Fs) *PackageDescriptorRepository {
	return &PackageDescriptorRepository{fs: fs}
}

// Read parses <projectDir>/package.json. Missing dependency tables are
// returned as empty maps.
func (it *PackageDescriptorRepository) Read(projectDir string) (*entities.PackageDescriptor, error) {
	path := filepath.Join(projectDir, fileName)

	data, err := afero.ReadFile(it.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var descriptor entities.PackageDescriptor
	if unmarshalErr := json.Unmarshal(data, &descriptor); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, unmarshalErr)
	}

	if descriptor.Dependencies == nil {
		descriptor.Dependencies = map[string]string{}
	}
	if descriptor.DevDependencies == nil {
		descriptor.DevDependencies = map[string]string{}
	}
	return &descriptor, nil
}
