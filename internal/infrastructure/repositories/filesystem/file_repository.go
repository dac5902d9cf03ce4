package filesystem

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const defaultFileMode = 0o644

// FileRepository implements repositories.FileRepository on an afero.Fs.
type FileRepository struct {
	fs afero.Fs
}

// NewFileRepository creates a file repository on fs.
func NewFileRepository(fs afero.Fs) *FileRepository {
	return &FileRepository{fs: fs}
}

func (it *FileRepository) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(it.fs, path)
}

// WriteFile truncates and rewrites path in place. It is not atomic: a crash
// mid-write leaves a partial file.
func (it *FileRepository) WriteFile(path string, data []byte) error {
	mode := os.FileMode(defaultFileMode)
	if info, err := it.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := afero.WriteFile(it.fs, path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (it *FileRepository) DirExists(path string) bool {
	exists, err := afero.DirExists(it.fs, path)
	return err == nil && exists
}
