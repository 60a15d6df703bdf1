package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	domainRepos "github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// VersionControlRegistry manages the available git backends.
type VersionControlRegistry struct {
	backends map[string]domainRepos.VersionControlFactory
}

// NewVersionControlRegistry creates an empty backend registry.
func NewVersionControlRegistry() *VersionControlRegistry {
	return &VersionControlRegistry{
		backends: make(map[string]domainRepos.VersionControlFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "cli").
func (r *VersionControlRegistry) Register(name string, factory domainRepos.VersionControlFactory) {
	r.backends[name] = factory
}

// Get opens the named backend on dir, talking to remote.
func (r *VersionControlRegistry) Get(name, dir, remote string) (domainRepos.VersionControlRepository, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", entities.ErrUnknownGitBackend, name, r.Names())
	}
	return factory(dir, remote)
}

// Names returns the registered backend names, sorted.
func (r *VersionControlRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
