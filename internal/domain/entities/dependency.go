package entities

import "path/filepath"

// Source is the version-control origin declared for a dependency.
type Source struct {
	Type      string // "git", "hg", "registry", ... (informational only)
	URL       string // Repository or registry URL
	Reference string // Commit or revision identifier, may be empty
}

// Dependency represents a single entry of a project manifest.
// Values are created by a manifest reader and never mutated afterwards.
type Dependency struct {
	Name        string   // Unique key within a manifest
	Version     string   // Resolved version as written in the manifest
	Source      *Source  // nil when the manifest has no source block
	Licenses    []string // Declared license identifiers, in manifest order
	Description *string  // nil when not declared
	Homepage    *string  // nil when not declared
	InstallPath string   // Directory relative to the dependency root; empty means Name
}

// InstallDir returns the directory holding the dependency files, relative to
// the dependency root.
func (it Dependency) InstallDir() string {
	if it.InstallPath != "" {
		return it.InstallPath
	}
	return it.Name
}

// DirIn returns the dependency directory under root. Absolute install paths
// (e.g. local go.mod replacements) are returned unchanged.
func (it Dependency) DirIn(root string) string {
	dir := it.InstallDir()
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// Reference returns the declared revision reference, or an empty string when
// the dependency has no source block.
func (it Dependency) Reference() string {
	if it.Source == nil {
		return ""
	}
	return it.Source.Reference
}

// SourceURL returns the declared source URL, or an empty string when the
// dependency has no source block.
func (it Dependency) SourceURL() string {
	if it.Source == nil {
		return ""
	}
	return it.Source.URL
}
