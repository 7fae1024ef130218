// Package app implements the application layer for bump.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/bump/internal/adapters/detector"
	"go.trai.ch/bump/internal/adapters/journal"
	"go.trai.ch/bump/internal/adapters/linear"
	"go.trai.ch/bump/internal/adapters/manifest"
	"go.trai.ch/bump/internal/adapters/tui"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/bump/internal/engine/orchestrator"
	"go.trai.ch/bump/internal/engine/propagation"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lister       ports.PackageLister
	logger       ports.Logger
	journal      ports.Journal
	prompter     ports.VersionPrompter
	stdin        io.Reader
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lister ports.PackageLister,
	log ports.Logger,
	j ports.Journal,
) *App {
	return &App{
		configLoader: loader,
		lister:       lister,
		logger:       log,
		journal:      j,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}
}

// WithPrompter replaces the environment based prompt selection.
func (a *App) WithPrompter(p ports.VersionPrompter) *App {
	a.prompter = p
	return a
}

// WithIO sets the streams used by the prompts.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.stdin = in
	a.stdout = out
	return a
}

// WithTeaOptions adds bubbletea program options used by the interactive prompt.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is an explicit bump.yaml location.
	ConfigPath string
	// OutputMode is one of "auto", "tui", "linear" or "ci".
	OutputMode string
	// JournalPath enables the change journal when set.
	JournalPath string
}

// Run bumps the package in sourceDir and propagates the new versions through
// the packages found in packagesDir.
func (a *App) Run(ctx context.Context, sourceDir, packagesDir string, opts RunOptions) error {
	// 1. Validate the folders
	if err := requireDir(sourceDir, domain.ErrSourceNotFound); err != nil {
		return err
	}
	if err := requireDir(packagesDir, domain.ErrPackagesNotFound); err != nil {
		return err
	}
	if !detector.ValidFlag(opts.OutputMode) {
		return zerr.With(domain.ErrInvalidOutputMode, "mode", opts.OutputMode)
	}

	// 2. Load the configuration
	cfg, err := a.configLoader.Load(packagesDir, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 3. Read the root package
	store := manifest.NewStore(cfg)
	root, err := store.Read(sourceDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestUnreadable.Error()), "path", store.Path(sourceDir))
	}
	if root.Name == "" || root.Version == "" {
		return zerr.With(domain.ErrManifestIncomplete, "path", root.Path)
	}

	state := domain.NewPropagationState()
	state.Schedule(root.Name, root.Version)

	// 4. Wire the run
	j := a.journal
	if opts.JournalPath != "" {
		fileJournal, err := journal.NewStore(opts.JournalPath)
		if err != nil {
			return err
		}
		j = fileJournal
	}

	engine := propagation.NewEngine(store, j, a.logger, cfg.DependencyFields)
	orch := orchestrator.New(a.lister, a.selectPrompter(opts.OutputMode), engine)

	// 5. Walk the dependents
	bumps, err := orch.Run(ctx, state, packagesDir, []string{root.Name})
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Bumped %d package(s)", len(bumps)))
	for _, b := range bumps {
		a.logger.Info(fmt.Sprintf("  %s => %s (wave %d)", b.Name, b.Version, b.Wave))
	}
	return nil
}

func (a *App) selectPrompter(outputMode string) ports.VersionPrompter {
	if a.prompter != nil {
		return a.prompter
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	if mode == detector.ModeTUI {
		opts := []tea.ProgramOption{tea.WithInput(a.stdin), tea.WithOutput(a.stdout)}
		return tui.NewPrompter(append(opts, a.teaOptions...)...)
	}
	return linear.NewPrompter(a.stdin, a.stdout)
}

func requireDir(path string, sentinel error) error {
	if path == "" {
		return zerr.With(sentinel, "path", path)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return zerr.With(sentinel, "path", path)
	}
	return nil
}
