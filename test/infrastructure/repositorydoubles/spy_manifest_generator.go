//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// SpyManifestGenerator records the scripts it was asked to run.
type SpyManifestGenerator struct {
	GenerateErr error
	Scripts     []string
}

var _ repositories.ManifestGenerator = (*SpyManifestGenerator)(nil)

func (s *SpyManifestGenerator) Generate(_ context.Context, _, script string) error {
	s.Scripts = append(s.Scripts, script)
	return s.GenerateErr
}
