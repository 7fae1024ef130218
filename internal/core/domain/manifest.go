// Package domain contains the core domain models for propagating version bumps
// through a monorepo of package manifests.
package domain

// DefaultDependencyField is the manifest section holding runtime dependencies.
const DefaultDependencyField = "dependencies"

// Manifest is the in-memory form of one package's manifest file.
type Manifest struct {
	// Path is the manifest file the data was read from.
	Path string

	// Name is the unique package name.
	Name string

	// Version is the package version. It is treated as an opaque string.
	Version string

	// Dependencies maps a dependency section (e.g. "dependencies") to the
	// dependency name → version constraint entries declared in it.
	Dependencies map[string]map[string]string

	// Source holds the raw document the manifest was decoded from. Writers
	// apply changes onto it so that unknown fields survive a rewrite.
	Source []byte
}

// IsEmpty reports whether the manifest carries no usable data, which is how
// an unreadable manifest is represented.
func (m *Manifest) IsEmpty() bool {
	return m.Name == "" && m.Version == "" && len(m.Dependencies) == 0
}

// Constraint returns the version constraint declared for dep in section.
func (m *Manifest) Constraint(section, dep string) (string, bool) {
	deps, ok := m.Dependencies[section]
	if !ok {
		return "", false
	}
	v, ok := deps[dep]
	return v, ok
}

// SetConstraint sets the version constraint for dep in section, creating the
// section if needed.
func (m *Manifest) SetConstraint(section, dep, version string) {
	if m.Dependencies == nil {
		m.Dependencies = make(map[string]map[string]string)
	}
	deps, ok := m.Dependencies[section]
	if !ok {
		deps = make(map[string]string)
		m.Dependencies[section] = deps
	}
	deps[dep] = version
}
