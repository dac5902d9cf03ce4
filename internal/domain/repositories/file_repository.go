package repositories

// FileRepository is the file I/O used for patch targets and marker checks.
type FileRepository interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the content of path, keeping its permissions.
	WriteFile(path string, data []byte) error
	DirExists(path string) bool
}
