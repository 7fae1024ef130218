// Package config provides the configuration loader for bump.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the configuration for a run over packagesDir.
func (l *Loader) Load(packagesDir, explicitPath string) (*domain.Config, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", explicitPath)
		}
		return l.loadFile(explicitPath)
	}

	path := filepath.Join(packagesDir, domain.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return l.loadFile(path)
}

func (l *Loader) loadFile(path string) (*domain.Config, error) {
	var bumpfile Bumpfile
	if err := readAndUnmarshalYAML(path, &bumpfile); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg := domain.DefaultConfig()
	if bumpfile.Manifest != "" {
		cfg.ManifestFile = bumpfile.Manifest
	}
	if bumpfile.DependencyFields != nil {
		cfg.DependencyFields = dedupe(bumpfile.DependencyFields)
	}
	if bumpfile.Indent != nil {
		cfg.Indent = *bumpfile.Indent
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info(fmt.Sprintf("using config %s", path))
	}
	return cfg, nil
}

// dedupe drops repeated section names while keeping the first occurrence order.
func dedupe(fields []string) []string {
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
