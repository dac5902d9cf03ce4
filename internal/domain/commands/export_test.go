package commands

// PatchTargetPath exports patchTargetPath for testing.
var PatchTargetPath = patchTargetPath //nolint:gochecknoglobals // test export
