// Package propagation rewrites manifests after a package received a new version.
package propagation

import (
	"fmt"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine applies one version decision to every manifest of the packages folder.
type Engine struct {
	store   ports.ManifestStore
	journal ports.Journal
	logger  ports.Logger
	fields  []string
}

// NewEngine creates an Engine scanning the given dependency sections in order.
func NewEngine(
	store ports.ManifestStore,
	journal ports.Journal,
	logger ports.Logger,
	fields []string,
) *Engine {
	return &Engine{
		store:   store,
		journal: journal,
		logger:  logger,
		fields:  fields,
	}
}

// Propagate sets name to version wherever it appears in the manifests found
// in manifestDirs and returns the dependents that need a decision of their own,
// in listing order. name is marked completed when the scan ends.
func (e *Engine) Propagate(
	state *domain.PropagationState,
	name, version string,
	manifestDirs []string,
) ([]string, error) {
	var dependents []string

	for _, dir := range manifestDirs {
		m, err := e.store.Read(dir)
		if err != nil {
			e.logger.Warn(fmt.Sprintf("skipping %s: %v", dir, err))
			continue
		}

		changes := e.setVersion(m, name, version)

		depChanges, scheduled := e.updateConstraints(state, m, name, version)
		changes = append(changes, depChanges...)
		if scheduled {
			dependents = append(dependents, m.Name)
		}

		if len(changes) == 0 {
			continue
		}
		if err := e.persist(dir, m, changes); err != nil {
			return nil, err
		}
	}

	state.Complete(name)
	return dependents, nil
}

func (e *Engine) setVersion(m *domain.Manifest, name, version string) []domain.Change {
	if m.Name != name || m.Version == version {
		return nil
	}

	old := m.Version
	m.Version = version
	e.logger.Info(fmt.Sprintf("Saving %s, %s => %s", name, old, version))

	return []domain.Change{{
		Package: m.Name,
		Field:   domain.VersionField,
		From:    old,
		To:      version,
	}}
}

// updateConstraints rewrites stale constraints on name and reports whether
// the manifest's package has to be scheduled.
func (e *Engine) updateConstraints(
	state *domain.PropagationState,
	m *domain.Manifest,
	name, version string,
) ([]domain.Change, bool) {
	var changes []domain.Change

	for _, section := range e.fields {
		old, ok := m.Constraint(section, name)
		if !ok || old == "" || old == version {
			continue
		}

		if m.Name != "" && state.IsDone(m.Name) {
			e.logger.Warn(fmt.Sprintf(
				"%s was already bumped, leaving %s constraint on %s at %s", m.Name, section, name, old,
			))
			continue
		}

		m.SetConstraint(section, name, version)
		e.logger.Info(fmt.Sprintf("Update dependency %s from %s, %s => %s", name, m.Name, old, version))
		changes = append(changes, domain.Change{
			Package: m.Name,
			Field:   domain.DependencyChangeField(section, name),
			From:    old,
			To:      version,
		})
	}

	if len(changes) == 0 {
		return changes, false
	}
	if m.Name == "" {
		e.logger.Warn(fmt.Sprintf("manifest %s has no name, its dependents are not followed", m.Path))
		return changes, false
	}

	state.Schedule(m.Name, m.Version)
	return changes, true
}

func (e *Engine) persist(dir string, m *domain.Manifest, changes []domain.Change) error {
	if err := e.store.Write(dir, m); err != nil {
		return zerr.With(err, "package", m.Name)
	}

	for _, change := range changes {
		change.Manifest = m.Path
		change.Content = m.Source
		if err := e.journal.Record(change); err != nil {
			return zerr.With(err, "package", m.Name)
		}
	}
	return nil
}
