//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create settings with the built-in defaults.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder with the default values.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    defaultSettings(),
	}
}

func defaultSettings() entities.Settings {
	return entities.Settings{
		Remote:              entities.DefaultRemote,
		ReleaseCandidateTag: entities.DefaultReleaseCandidateTag,
		ReleaseCandidateRef: "refs/tags/" + entities.DefaultReleaseCandidateTag,
		RefEnvVar:           entities.DefaultRefEnvVar,
		GitBackend:          entities.GitBackendCLI,
		IndexURL:            entities.DefaultIndexURL,
		RequirementsFile:    entities.DefaultRequirementsFile,
		ProjectDir:          ".",
	}
}

// WithProjectDir sets the project directory.
func (b *SettingsBuilder) WithProjectDir(dir string) *SettingsBuilder {
	b.settings.ProjectDir = dir
	return b
}

// WithStartCommit sets the first commit considered by the history walk.
func (b *SettingsBuilder) WithStartCommit(commit string) *SettingsBuilder {
	b.settings.StartCommit = commit
	return b
}

// WithGitBackend sets the git backend name.
func (b *SettingsBuilder) WithGitBackend(backend string) *SettingsBuilder {
	b.settings.GitBackend = backend
	return b
}

// WithIndexURL sets the package index base URL.
func (b *SettingsBuilder) WithIndexURL(url string) *SettingsBuilder {
	b.settings.IndexURL = url
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings returns a pointer to a copy of the built settings.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = defaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.settings,
	}
}
