package entities

// ArtifactState holds the existence signals for a generated client. It is a
// liveness check only: an existing but outdated client is reported fresh.
type ArtifactState struct {
	// ClientResolved is true when the client package resolves from the project.
	ClientResolved bool
	// MarkerDirExists is true when the generator's output directory exists
	// next to the resolved client package.
	MarkerDirExists bool
	// MarkerResolved is true when the generator's output resolves on its own.
	MarkerResolved bool
}

// IsFresh is true only when every signal is present. Any missing signal
// means the client must be regenerated.
func (it ArtifactState) IsFresh() bool {
	return it.ClientResolved && it.MarkerDirExists && it.MarkerResolved
}
