package domain

// Project is the mutable record being transformed. Its action sequence is
// bound once at construction and never changes; the scalar fields change
// only through an action's Apply step.
type Project struct {
	name       string
	department string
	funded     bool
	budget     float64
	completed  bool
	actions    []Action
}

// NewProject creates a project with its action sequence bound for life.
// The slice is copied so the caller cannot reorder the bound sequence
// afterwards.
func NewProject(name, department string, funded bool, budget float64, actions []Action) *Project {
	bound := make([]Action, len(actions))
	copy(bound, actions)
	return &Project{
		name:       name,
		department: department,
		funded:     funded,
		budget:     budget,
		actions:    bound,
	}
}

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Department returns the current owning department.
func (p *Project) Department() string { return p.department }

// Funded reports whether funding has been approved.
func (p *Project) Funded() bool { return p.funded }

// Budget returns the current budget.
func (p *Project) Budget() float64 { return p.budget }

// Completed reports whether the project has been completed.
func (p *Project) Completed() bool { return p.completed }

// Actions returns a copy of the bound action sequence, in bind order.
func (p *Project) Actions() []Action {
	out := make([]Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// Process applies every bound action in bind order, passing the project
// itself to each in turn. There is no isolation between actions: each one
// observes the mutations made by those before it. Calling Process again
// re-applies deltas and re-evaluates gates against the mutated state.
func (p *Project) Process() {
	for _, a := range p.actions {
		a.Apply(p)
	}
}
