package domain

// Registry is an ordered owner of projects providing bulk processing.
// Projects never interact with each other; the addition order only fixes
// the visit sequence. The registry is not safe for concurrent use:
// callers that need cross-request state go through a ProjectStore
// adapter instead of sharing a Registry.
type Registry struct {
	projects []*Project
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a project to the registry.
func (r *Registry) Add(p *Project) {
	r.projects = append(r.projects, p)
}

// ProcessAll processes every held project, in addition order. Processing
// an empty registry succeeds as a no-op.
func (r *Registry) ProcessAll() {
	for _, p := range r.projects {
		p.Process()
	}
}

// Len returns the number of held projects.
func (r *Registry) Len() int { return len(r.projects) }

// Projects returns the held projects in addition order. The slice is a
// copy; the projects themselves are shared.
func (r *Registry) Projects() []*Project {
	out := make([]*Project, len(r.projects))
	copy(out, r.projects)
	return out
}
