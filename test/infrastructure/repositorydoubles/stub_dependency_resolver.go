//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

// StubDependencyResolver resolves requests from a fixed table.
type StubDependencyResolver struct {
	// Entries maps a request to the entry file it resolves to.
	Entries map[string]string
	// spy: requests received, in order
	Requests []string
}

var _ repositories.DependencyResolver = (*StubDependencyResolver)(nil)

func (s *StubDependencyResolver) Resolve(_, request string) (string, bool) {
	s.Requests = append(s.Requests, request)
	entry, ok := s.Entries[request]
	return entry, ok
}
