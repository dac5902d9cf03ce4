package entities

// CodegenResult is what a completed code generation command reports.
type CodegenResult struct {
	Success bool
	Stderr  string
}
