package docket

import (
	"context"
	"io"
	"log/slog"

	"github.com/docket-run/docket/pkg/domain"
	"github.com/docket-run/docket/pkg/manifest"
)

// Engine is the high-level entry point for the Docket library. It wraps
// the pure domain processing loop with structured logging and lifecycle
// hooks for observability.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Docket Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return eng
}

// Load builds a registry of projects from a YAML manifest on disk.
func (e *Engine) Load(path string) (*domain.Registry, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

// Process applies the project's bound actions in bind order, firing hooks
// and logs per action. The resulting state is identical to calling
// Project.Process directly.
func (e *Engine) Process(ctx context.Context, p *domain.Project) {
	actions := p.Actions()
	event := &domain.ProjectEvent{Project: p.Name(), Actions: len(actions)}

	if e.hooks.OnProjectEnter != nil {
		e.hooks.OnProjectEnter(ctx, event)
	}
	e.logger.Debug("processing project", "project", p.Name(), "actions", len(actions))

	for _, a := range actions {
		a.Apply(p)

		if e.hooks.OnActionApply != nil {
			e.hooks.OnActionApply(ctx, &domain.ActionEvent{
				Project:    p.Name(),
				Action:     a.Name(),
				Department: p.Department(),
				Funded:     p.Funded(),
				Budget:     p.Budget(),
				Completed:  p.Completed(),
			})
		}
		e.logger.Debug("action applied",
			"project", p.Name(),
			"action", a.Name(),
			"funded", p.Funded(),
			"budget", p.Budget(),
			"completed", p.Completed(),
		)
	}

	if e.hooks.OnProjectLeave != nil {
		e.hooks.OnProjectLeave(ctx, event)
	}
}

// ProcessAll processes every project in the registry, in addition order.
// Projects never interact, so the per-project semantics are exactly those
// of Process.
func (e *Engine) ProcessAll(ctx context.Context, r *domain.Registry) {
	for _, p := range r.Projects() {
		e.Process(ctx, p)
	}
}
