package node

import (
	"encoding/json"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	nodeModulesDir  = "node_modules"
	packageManifest = "package.json"
)

// fileExtensions are tried, in order, after the bare path.
var fileExtensions = []string{".js", ".json", ".node"}

// DependencyResolver resolves package requests with Node's CommonJS
// algorithm: relative requests from the base directory, bare requests from
// every node_modules directory up to the filesystem root.
type DependencyResolver struct {
	fs afero.Fs
}

// NewDependencyResolver creates a resolver reading from fs.
func NewDependencyResolver(fs afero.Fs) *DependencyResolver {
	return &DependencyResolver{fs: fs}
}

// Resolve returns the entry file of request, or false when it cannot be
// found. Read errors are treated as "not found".
func (it *DependencyResolver) Resolve(baseDir, request string) (string, bool) {
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		logger.Debugf("Cannot resolve %q from %q: %v", request, baseDir, err)
		return "", false
	}

	if isRelativeRequest(request) || filepath.IsAbs(request) {
		candidate := request
		if !filepath.IsAbs(request) {
			candidate = filepath.Join(baseDir, request)
		}
		return it.resolvePath(candidate)
	}

	for _, dir := range nodeModulesPaths(baseDir) {
		if resolved, ok := it.resolvePath(filepath.Join(dir, filepath.FromSlash(request))); ok {
			return resolved, true
		}
	}
	return "", false
}

func (it *DependencyResolver) resolvePath(candidate string) (string, bool) {
	if resolved, ok := it.resolveFile(candidate); ok {
		return resolved, true
	}
	return it.resolveDirectory(candidate)
}

// resolveFile tries candidate itself, then candidate with each extension.
func (it *DependencyResolver) resolveFile(candidate string) (string, bool) {
	if it.isFile(candidate) {
		return candidate, true
	}
	for _, ext := range fileExtensions {
		if it.isFile(candidate + ext) {
			return candidate + ext, true
		}
	}
	return "", false
}

// resolveDirectory follows the "main" field of the directory's package.json
// and falls back to its index file.
func (it *DependencyResolver) resolveDirectory(dir string) (string, bool) {
	if main := it.readMain(dir); main != "" {
		mainPath := filepath.Join(dir, filepath.FromSlash(main))
		if resolved, ok := it.resolveFile(mainPath); ok {
			return resolved, true
		}
		if resolved, ok := it.resolveIndex(mainPath); ok {
			return resolved, true
		}
	}
	return it.resolveIndex(dir)
}

func (it *DependencyResolver) resolveIndex(dir string) (string, bool) {
	for _, ext := range fileExtensions {
		index := filepath.Join(dir, "index"+ext)
		if it.isFile(index) {
			return index, true
		}
	}
	return "", false
}

func (it *DependencyResolver) readMain(dir string) string {
	data, err := afero.ReadFile(it.fs, filepath.Join(dir, packageManifest))
	if err != nil {
		return ""
	}

	var manifest struct {
		Main string `json:"main"`
	}
	if unmarshalErr := json.Unmarshal(data, &manifest); unmarshalErr != nil {
		logger.Debugf("Ignoring malformed %s in %s: %v", packageManifest, dir, unmarshalErr)
		return ""
	}
	return manifest.Main
}

func (it *DependencyResolver) isFile(path string) bool {
	info, err := it.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// isRelativeRequest follows Node: only "./", "../", "." and ".." are
// relative, so ".prisma/client" is a bare package request.
func isRelativeRequest(request string) bool {
	return request == "." || request == ".." ||
		strings.HasPrefix(request, "./") || strings.HasPrefix(request, "../")
}

// nodeModulesPaths lists the node_modules directories visible from dir,
// nearest first.
func nodeModulesPaths(dir string) []string {
	var paths []string
	for {
		if filepath.Base(dir) != nodeModulesDir {
			paths = append(paths, filepath.Join(dir, nodeModulesDir))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return paths
		}
		dir = parent
	}
}
