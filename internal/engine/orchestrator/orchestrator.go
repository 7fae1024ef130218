// Package orchestrator drives the breadth-first walk over the packages that
// need a version decision.
package orchestrator

import (
	"context"
	"path/filepath"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Propagator applies a version decision to the packages folder.
type Propagator interface {
	Propagate(state *domain.PropagationState, name, version string, manifestDirs []string) ([]string, error)
}

// Orchestrator asks for one version per package and follows the dependents
// each decision produces.
type Orchestrator struct {
	lister   ports.PackageLister
	prompter ports.VersionPrompter
	engine   Propagator
}

// New creates an Orchestrator.
func New(lister ports.PackageLister, prompter ports.VersionPrompter, engine Propagator) *Orchestrator {
	return &Orchestrator{
		lister:   lister,
		prompter: prompter,
		engine:   engine,
	}
}

type item struct {
	name string
	wave int
}

// Run processes initialNames as the first wave and keeps going until no
// dependent is left. Each package is prompted at most once. The bumps are
// returned in the order they were decided.
func (o *Orchestrator) Run(
	ctx context.Context,
	state *domain.PropagationState,
	packagesRoot string,
	initialNames []string,
) ([]domain.Bump, error) {
	var (
		queue  []item
		queued = make(map[string]struct{})
		bumps  []domain.Bump
	)

	enqueue := func(name string, wave int) {
		if _, ok := queued[name]; ok {
			return
		}
		queued[name] = struct{}{}
		queue = append(queue, item{name: name, wave: wave})
	}

	for _, name := range initialNames {
		enqueue(name, 1)
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return bumps, zerr.Wrap(err, domain.ErrPromptAborted.Error())
		}

		next := queue[0]
		queue = queue[1:]

		if state.IsDone(next.name) {
			continue
		}

		dirs, err := o.packageDirs(packagesRoot)
		if err != nil {
			return bumps, err
		}

		defaultVersion, _ := state.Pending(next.name)
		version, err := o.prompter.Ask(ctx, next.name, defaultVersion)
		if err != nil {
			return bumps, err
		}

		dependents, err := o.engine.Propagate(state, next.name, version, dirs)
		if err != nil {
			return bumps, err
		}
		bumps = append(bumps, domain.Bump{Name: next.name, Version: version, Wave: next.wave})

		for _, dep := range dependents {
			enqueue(dep, next.wave+1)
		}
	}

	return bumps, nil
}

// packageDirs lists the package directories afresh, so that rewrites made by
// earlier decisions are always read back from disk.
func (o *Orchestrator) packageDirs(root string) ([]string, error) {
	names, err := o.lister.List(root)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, len(names))
	for i, name := range names {
		dirs[i] = filepath.Join(root, name)
	}
	return dirs, nil
}
