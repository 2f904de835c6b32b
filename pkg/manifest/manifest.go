package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docket-run/docket/pkg/domain"
)

// Manifest is the top-level declarative document: a set of projects with
// their bound action sequences.
type Manifest struct {
	Projects []ProjectSpec `yaml:"projects" json:"projects"`
}

// ProjectSpec is the declarative form of one project. The scalar fields
// hold the construction state; after processing, the serve surface writes
// the mutated scalars back so the spec doubles as the persisted record.
type ProjectSpec struct {
	Name       string       `yaml:"name" json:"name"`
	Department string       `yaml:"department" json:"department"`
	Funded     bool         `yaml:"funded" json:"funded"`
	Budget     float64      `yaml:"budget" json:"budget"`
	Completed  bool         `yaml:"completed,omitempty" json:"completed,omitempty"`
	Actions    []ActionSpec `yaml:"actions" json:"actions"`
}

// Load reads and parses a YAML manifest from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML manifest and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every project and action spec, reporting the first
// offending position.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Projects))
	for i, p := range m.Projects {
		if p.Name == "" {
			return fmt.Errorf("projects[%d]: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("projects[%d]: duplicate project name %q", i, p.Name)
		}
		seen[p.Name] = true

		for j, a := range p.Actions {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("projects[%d] (%s) actions[%d]: %w", i, p.Name, j, err)
			}
		}
	}
	return nil
}

// Build constructs a registry holding every declared project, in
// declaration order.
func (m *Manifest) Build() (*domain.Registry, error) {
	registry := domain.NewRegistry()
	for i, spec := range m.Projects {
		p, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("projects[%d] (%s): %w", i, spec.Name, err)
		}
		registry.Add(p)
	}
	return registry, nil
}

// Build constructs the domain project with its action sequence bound in
// declaration order. Completed is not an input to construction: the
// domain recomputes completion from the actions themselves.
func (s *ProjectSpec) Build() (*domain.Project, error) {
	actions := make([]domain.Action, 0, len(s.Actions))
	for j, a := range s.Actions {
		built, err := a.Build()
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", j, err)
		}
		actions = append(actions, built)
	}
	return domain.NewProject(s.Name, s.Department, s.Funded, s.Budget, actions), nil
}

// State is the scalar snapshot of a project, used for CLI output and as
// the persisted shape on the serve surface.
type State struct {
	Name       string  `json:"name" yaml:"name"`
	Department string  `json:"department" yaml:"department"`
	Funded     bool    `json:"funded" yaml:"funded"`
	Budget     float64 `json:"budget" yaml:"budget"`
	Completed  bool    `json:"completed" yaml:"completed"`
}

// Snapshot captures the current scalar state of a project.
func Snapshot(p *domain.Project) State {
	return State{
		Name:       p.Name(),
		Department: p.Department(),
		Funded:     p.Funded(),
		Budget:     p.Budget(),
		Completed:  p.Completed(),
	}
}

// ApplyState writes a processed project's scalars back into the spec so
// the stored record reflects the latest run.
func (s *ProjectSpec) ApplyState(p *domain.Project) {
	s.Department = p.Department()
	s.Funded = p.Funded()
	s.Budget = p.Budget()
	s.Completed = p.Completed()
}
