// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"os"

	"github.com/charmbracelet/log"

	"venvctl/internal/config"
	"venvctl/internal/discovery"
	"venvctl/internal/match"
)

type (
	// Hook is invoked after every successful activation with the new state.
	// Errors (and panics) inside a hook are logged and discarded; they never
	// undo the already-applied transition or reach the caller.
	Hook func(State) error

	// ProjectRootFunc is the external project-root capability. It returns ""
	// when the current directory belongs to no project, which is a normal
	// outcome, not an error.
	ProjectRootFunc func() (string, error)

	// Manager coordinates discovery, matching and activation. It owns the
	// PATH baseline captured at construction and the active-environment
	// slot. Create one per process, before any activation.
	Manager struct {
		cfg          *config.Config
		logger       *log.Logger
		originalPath PathList
		active       *State
		postSet      Hook
		projectRoot  ProjectRootFunc
	}

	// Option configures a Manager.
	Option func(*Manager)
)

// WithLogger replaces the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithPostSetHook registers the post-activation hook.
func WithPostSetHook(hook Hook) Option {
	return func(m *Manager) { m.postSet = hook }
}

// WithProjectRoot supplies the project-root capability used by Candidates
// and AutoResolve. Without it, AutoResolve reports an error.
func WithProjectRoot(fn ProjectRootFunc) Option {
	return func(m *Manager) { m.projectRoot = fn }
}

// New builds a Manager: it captures the current PATH as the immutable
// baseline and resolves any environment inherited from the parent process
// into the active slot.
func New(cfg *config.Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:          cfg,
		logger:       log.NewWithOptions(os.Stderr, log.Options{Prefix: "venvctl"}),
		originalPath: ParsePathList(os.Getenv("PATH")),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.resolveStartup()
	return m
}

// Current returns the active environment state, if any.
func (m *Manager) Current() (State, bool) {
	if m.active == nil {
		return State{}, false
	}
	return *m.active, true
}

// Candidates aggregates every enumerable environment, deduplicated by path.
func (m *Manager) Candidates() []discovery.Descriptor {
	root := m.lookupProjectRoot()
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	candidates := discovery.Candidates(m.cfg.VenvsPath, root, cwd)
	m.logger.Debug("enumerated environments", "count", len(candidates), "project", root)
	return candidates
}

// ActivateByName matches query against the aggregated candidate set and
// activates the best match. It returns false, without side effects, when
// nothing matches.
func (m *Manager) ActivateByName(query string) (State, bool) {
	d, ok := match.Best(m.Candidates(), query)
	if !ok {
		m.logger.Debug("no environment matches query", "query", query)
		return State{}, false
	}
	return m.Activate(d)
}

// lookupProjectRoot resolves the project root, treating every failure mode
// as "no project".
func (m *Manager) lookupProjectRoot() string {
	if m.projectRoot == nil {
		return ""
	}
	root, err := m.projectRoot()
	if err != nil {
		m.logger.Debug("project root lookup failed", "err", err)
		return ""
	}
	return root
}
