package config

// Bumpfile represents the structure of the bump.yaml configuration file.
type Bumpfile struct {
	Manifest         string   `yaml:"manifest"`
	DependencyFields []string `yaml:"dependencyFields"`
	Indent           *string  `yaml:"indent"`
}
