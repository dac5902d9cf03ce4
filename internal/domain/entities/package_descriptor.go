package entities

// PackageDescriptor is the declared dependency table of the host project,
// as read from its package.json.
type PackageDescriptor struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Declares reports whether name appears in either dependency table.
func (it *PackageDescriptor) Declares(name string) bool {
	if _, ok := it.Dependencies[name]; ok {
		return true
	}
	_, ok := it.DevDependencies[name]
	return ok
}

// Constraint returns the runtime version constraint declared for name.
// Development dependencies are not consulted.
func (it *PackageDescriptor) Constraint(name string) (string, bool) {
	constraint, ok := it.Dependencies[name]
	return constraint, ok
}
