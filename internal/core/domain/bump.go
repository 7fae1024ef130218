package domain

// Bump is the outcome of one version decision made during a run.
type Bump struct {
	// Name is the bumped package.
	Name string
	// Version is the version the operator chose.
	Version string
	// Wave is the breadth-first layer the package was discovered in, starting at 1.
	Wave int
}

// Change describes a single field rewrite that was persisted to a manifest.
type Change struct {
	Package  string `json:"package"`
	Manifest string `json:"manifest"`
	// Field is "version" or "<section>.<dependency>".
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
	// Content is the manifest as written. Journals digest it instead of storing it.
	Content []byte `json:"-"`
}

// VersionField is the Change.Field value for a package's own version.
const VersionField = "version"

// DependencyChangeField returns the Change.Field value for a constraint rewrite.
func DependencyChangeField(section, dep string) string {
	return section + "." + dep
}
