// Package manifest implements reading and rewriting package.json style manifests.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore on top of JSON manifest files.
// Writes edit the original document in place so that field order and any
// fields bump does not understand are preserved.
type Store struct {
	filename string
	fields   []string
	indent   string
}

// NewStore creates a Store from the run configuration.
func NewStore(cfg *domain.Config) *Store {
	return &Store{
		filename: cfg.ManifestFile,
		fields:   cfg.DependencyFields,
		indent:   cfg.Indent,
	}
}

// Path returns the manifest file path for dir.
func (s *Store) Path(dir string) string {
	return filepath.Join(dir, s.filename)
}

// Read loads the manifest found in dir.
func (s *Store) Read(dir string) (*domain.Manifest, error) {
	path := s.Path(dir)

	//nolint:gosec // Path is built from the operator supplied packages folder
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnreadable.Error()), "path", path)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, zerr.With(domain.ErrManifestMalformed, "path", path)
	}

	m := &domain.Manifest{
		Path:    path,
		Name:    stringField(data, "name"),
		Version: stringField(data, "version"),
		Source:  data,
	}

	for _, field := range s.fields {
		section := gjson.GetBytes(data, escapeKey(field))
		if !section.IsObject() {
			continue
		}
		section.ForEach(func(key, value gjson.Result) bool {
			if value.Type == gjson.String {
				m.SetConstraint(field, key.String(), value.String())
			}
			return true
		})
	}

	return m, nil
}

// Write persists m to the manifest file in dir.
func (s *Store) Write(dir string, m *domain.Manifest) error {
	path := s.Path(dir)

	doc, err := s.apply(m)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(doc), "", s.indent); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestMalformed.Error()), "path", path)
	}
	buf.WriteByte('\n')

	//nolint:gosec // Manifests keep conventional world-readable permissions
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	m.Path = path
	m.Source = buf.Bytes()
	return nil
}

// apply sets every value of m that differs from its source document.
func (s *Store) apply(m *domain.Manifest) ([]byte, error) {
	doc := m.Source
	if len(bytes.TrimSpace(doc)) == 0 {
		doc = []byte("{}")
	}

	var err error
	if m.Version != "" {
		if doc, err = setString(doc, escapeKey("version"), m.Version); err != nil {
			return nil, err
		}
	}

	for _, field := range s.fields {
		for dep, constraint := range m.Dependencies[field] {
			doc, err = setString(doc, escapeKey(field)+"."+escapeKey(dep), constraint)
			if err != nil {
				return nil, zerr.With(err, "dependency", dep)
			}
		}
	}

	return doc, nil
}

// setString writes value at path unless the document already holds it.
func setString(doc []byte, path, value string) ([]byte, error) {
	current := gjson.GetBytes(doc, path)
	if current.Type == gjson.String && current.String() == value {
		return doc, nil
	}
	out, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestEditFailed.Error()), "field", path)
	}
	return out, nil
}

func stringField(data []byte, key string) string {
	r := gjson.GetBytes(data, escapeKey(key))
	if r.Type != gjson.String {
		return ""
	}
	return r.String()
}

// escapeKey turns a literal object key into a single gjson/sjson path
// component. Anything outside [A-Za-z0-9_-] is escaped, which covers the
// path syntax characters ('.', '*', '?', '|', '#', '@', ...).
func escapeKey(key string) string {
	var b []byte
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isSafeKeyChar(c) {
			if b != nil {
				b = append(b, c)
			}
			continue
		}
		if b == nil {
			b = make([]byte, 0, len(key)+4)
			b = append(b, key[:i]...)
		}
		b = append(b, '\\', c)
	}
	if b == nil {
		return key
	}
	return string(b)
}

func isSafeKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-' ||
		c >= 0x80
}
