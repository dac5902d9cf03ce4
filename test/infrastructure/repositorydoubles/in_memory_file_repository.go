//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// InMemoryFileRepository keeps files in a map and records every write.
type InMemoryFileRepository struct {
	Files      map[string]string
	Dirs       map[string]bool
	ReadErr    error
	WriteErr   error
	ReadPanics bool
	// spy: paths received, in order
	ReadPaths  []string
	WritePaths []string
}

var _ repositories.FileRepository = (*InMemoryFileRepository)(nil)

func (r *InMemoryFileRepository) ReadFile(path string) ([]byte, error) {
	r.ReadPaths = append(r.ReadPaths, path)
	if r.ReadPanics {
		panic("read exploded")
	}
	if r.ReadErr != nil {
		return nil, r.ReadErr
	}
	content, ok := r.Files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file or directory", path)
	}
	return []byte(content), nil
}

func (r *InMemoryFileRepository) WriteFile(path string, data []byte) error {
	r.WritePaths = append(r.WritePaths, path)
	if r.WriteErr != nil {
		return r.WriteErr
	}
	if r.Files == nil {
		r.Files = map[string]string{}
	}
	r.Files[path] = string(data)
	return nil
}

func (r *InMemoryFileRepository) DirExists(path string) bool {
	return r.Dirs[path]
}
