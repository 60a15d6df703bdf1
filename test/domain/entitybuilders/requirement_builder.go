//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RequirementBuilder helps create test requirements with a fluent interface.
type RequirementBuilder struct {
	*testkit.BaseBuilder
	name    string
	version string
	source  string
}

// NewRequirementBuilder creates a new requirement builder with sensible defaults.
func NewRequirementBuilder() *RequirementBuilder {
	return &RequirementBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "requests",
		version:     "2.31.0",
		source:      "requirements.txt",
	}
}

// WithName sets the package name.
func (b *RequirementBuilder) WithName(name string) *RequirementBuilder {
	b.name = name
	return b
}

// WithVersion sets the pinned version.
func (b *RequirementBuilder) WithVersion(version string) *RequirementBuilder {
	b.version = version
	return b
}

// WithSource sets the file the pin was read from.
func (b *RequirementBuilder) WithSource(source string) *RequirementBuilder {
	b.source = source
	return b
}

// Build creates the requirement (satisfies testkit.Builder interface).
func (b *RequirementBuilder) Build() interface{} {
	return b.BuildRequirement()
}

// BuildRequirement creates the requirement with a concrete return type.
func (b *RequirementBuilder) BuildRequirement() entities.Requirement {
	return entities.Requirement{
		Name:    b.name,
		Version: b.version,
		Source:  b.source,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RequirementBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "requests"
	b.version = "2.31.0"
	b.source = "requirements.txt"
	return b
}

// Clone creates a deep copy of the RequirementBuilder.
func (b *RequirementBuilder) Clone() testkit.Builder {
	return &RequirementBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		source:      b.source,
	}
}
