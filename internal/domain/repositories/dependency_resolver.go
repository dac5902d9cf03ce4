package repositories

// DependencyResolver locates installed packages the way Node's require does.
type DependencyResolver interface {
	// Resolve returns the entry file that request resolves to from baseDir.
	// A missing package is reported through found, never as an error.
	Resolve(baseDir, request string) (path string, found bool)
}
