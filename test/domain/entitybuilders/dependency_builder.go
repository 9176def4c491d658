//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name        string
	version     string
	source      *entities.Source
	licenses    []string
	description *string
	homepage    *string
	installPath string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
// The default dependency has a source block, one license, and no description/homepage.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "acme/widget",
		version:     "1.2.0",
		source:      defaultSource(),
		licenses:    []string{"MIT"},
	}
}

func defaultSource() *entities.Source {
	return &entities.Source{
		Type:      "git",
		URL:       "https://example.com/widget",
		Reference: "abcdef1234567",
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithVersion sets the version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithSource sets the source URL and reference.
func (b *DependencyBuilder) WithSource(url, reference string) *DependencyBuilder {
	b.source = &entities.Source{Type: "git", URL: url, Reference: reference}
	return b
}

// WithoutSource removes the source block.
func (b *DependencyBuilder) WithoutSource() *DependencyBuilder {
	b.source = nil
	return b
}

// WithLicenses sets the declared license identifiers.
func (b *DependencyBuilder) WithLicenses(licenses ...string) *DependencyBuilder {
	b.licenses = licenses
	return b
}

// WithDescription sets the description.
func (b *DependencyBuilder) WithDescription(description string) *DependencyBuilder {
	b.description = &description
	return b
}

// WithHomepage sets the homepage.
func (b *DependencyBuilder) WithHomepage(homepage string) *DependencyBuilder {
	b.homepage = &homepage
	return b
}

// WithInstallPath sets the install directory relative to the dependency root.
func (b *DependencyBuilder) WithInstallPath(path string) *DependencyBuilder {
	b.installPath = path
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	var source *entities.Source
	if b.source != nil {
		copied := *b.source
		source = &copied
	}

	return entities.Dependency{
		Name:        b.name,
		Version:     b.version,
		Source:      source,
		Licenses:    append([]string(nil), b.licenses...),
		Description: b.description,
		Homepage:    b.homepage,
		InstallPath: b.installPath,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "acme/widget"
	b.version = "1.2.0"
	b.source = defaultSource()
	b.licenses = []string{"MIT"}
	b.description = nil
	b.homepage = nil
	b.installPath = ""
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	clone := &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		licenses:    append([]string(nil), b.licenses...),
		description: b.description,
		homepage:    b.homepage,
		installPath: b.installPath,
	}
	if b.source != nil {
		copied := *b.source
		clone.source = &copied
	}
	return clone
}
