package repositories

import "context"

// ManifestGenerator produces the routes manifest of the host project.
type ManifestGenerator interface {
	Generate(ctx context.Context, projectDir, script string) error
}
