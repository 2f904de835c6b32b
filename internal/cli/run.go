// Package cli implements the command logic behind the docket binary,
// kept separate from cobra wiring so it can be tested directly.
package cli

import (
	"context"
	"fmt"

	"github.com/docket-run/docket"
	"github.com/docket-run/docket/pkg/manifest"
)

// Run loads a manifest, processes every declared project repeat times,
// and returns the final state of each project in declaration order.
// Repeated runs are cumulative on purpose: deltas re-apply and gates
// re-evaluate against the mutated budget.
func Run(ctx context.Context, eng *docket.Engine, path string, repeat int) ([]manifest.State, error) {
	if repeat < 1 {
		repeat = 1
	}

	registry, err := eng.Load(path)
	if err != nil {
		return nil, err
	}

	for i := 0; i < repeat; i++ {
		eng.ProcessAll(ctx, registry)
	}

	projects := registry.Projects()
	states := make([]manifest.State, 0, len(projects))
	for _, p := range projects {
		states = append(states, manifest.Snapshot(p))
	}
	return states, nil
}

// Validate parses a manifest and confirms every project builds.
func Validate(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if _, err := m.Build(); err != nil {
		return fmt.Errorf("manifest is valid YAML but does not build: %w", err)
	}
	return nil
}
