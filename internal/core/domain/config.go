package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the optional configuration file looked up
	// in the packages folder.
	ConfigFileName = "bump.yaml"

	// DefaultManifestFile is the manifest file name inside each package directory.
	DefaultManifestFile = "package.json"

	// DefaultIndent is the indentation used when rewriting manifests.
	DefaultIndent = "  "

	// FilePerm is the default permission for files written by bump (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// Config holds the tunable parts of a run.
type Config struct {
	// ManifestFile is the manifest file name inside each package directory.
	ManifestFile string
	// DependencyFields lists the manifest sections scanned for dependencies, in order.
	DependencyFields []string
	// Indent is the indentation unit used when rewriting manifests.
	Indent string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		ManifestFile:     DefaultManifestFile,
		DependencyFields: []string{DefaultDependencyField},
		Indent:           DefaultIndent,
	}
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.ManifestFile == "" {
		return zerr.With(ErrInvalidConfig, "reason", "manifest file name is empty")
	}
	if strings.ContainsAny(c.ManifestFile, `/\`) {
		err := zerr.With(ErrInvalidConfig, "reason", "manifest file name must not contain a path separator")
		return zerr.With(err, "manifest", c.ManifestFile)
	}
	if len(c.DependencyFields) == 0 {
		return zerr.With(ErrInvalidConfig, "reason", "no dependency fields configured")
	}
	for _, f := range c.DependencyFields {
		if strings.TrimSpace(f) == "" {
			return zerr.With(ErrInvalidConfig, "reason", "dependency field name is empty")
		}
	}
	if strings.Trim(c.Indent, " \t") != "" {
		err := zerr.With(ErrInvalidConfig, "reason", "indent may only contain spaces and tabs")
		return zerr.With(err, "indent", c.Indent)
	}
	return nil
}
