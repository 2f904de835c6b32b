package docket_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/docket-run/docket"
	"github.com/docket-run/docket/pkg/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEngineLoadAndProcessAll(t *testing.T) {
	path := writeManifest(t, `
projects:
  - name: Central Library
    department: Culture
    funded: false
    budget: 1250000
    actions:
      - type: approve_funding
      - type: adjust_budget
        delta: 750000
      - type: complete_project
  - name: Airport Renovation
    department: Transportation
    funded: false
    budget: 3000000
    actions:
      - type: conditional_approval
        threshold: 5000000
        action:
          type: approve_funding
`)

	eng := docket.New()
	registry, err := eng.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	eng.ProcessAll(context.Background(), registry)

	projects := registry.Projects()
	library, airport := projects[0], projects[1]

	if !library.Funded() || library.Budget() != 2000000 || !library.Completed() {
		t.Errorf("library: funded=%v budget=%v completed=%v",
			library.Funded(), library.Budget(), library.Completed())
	}
	if airport.Funded() {
		t.Error("airport must stay unfunded below the gate threshold")
	}
}

func TestEngineLoadRejectsBadManifest(t *testing.T) {
	path := writeManifest(t, "projects:\n  - name: A\n    actions:\n      - type: demolish\n")

	eng := docket.New()
	if _, err := eng.Load(path); err == nil {
		t.Fatal("expected error for unknown action type")
	}
}

func TestEngineFiresLifecycleHooks(t *testing.T) {
	var enters, leaves, applies atomic.Int64
	var appliedActions []string

	hooks := domain.LifecycleHooks{
		OnProjectEnter: func(ctx context.Context, e *domain.ProjectEvent) {
			enters.Add(1)
		},
		OnProjectLeave: func(ctx context.Context, e *domain.ProjectEvent) {
			leaves.Add(1)
		},
		OnActionApply: func(ctx context.Context, e *domain.ActionEvent) {
			applies.Add(1)
			appliedActions = append(appliedActions, e.Action)
		},
	}

	p := domain.NewProject("River Bridge", "Transportation", false, 1000000, []domain.Action{
		domain.ApproveFunding(),
		domain.AdjustBudget(500000),
	})
	registry := domain.NewRegistry()
	registry.Add(p)

	eng := docket.New(docket.WithLifecycleHooks(hooks))
	eng.ProcessAll(context.Background(), registry)

	if enters.Load() != 1 || leaves.Load() != 1 {
		t.Errorf("expected 1 enter/leave, got %d/%d", enters.Load(), leaves.Load())
	}
	if applies.Load() != 2 {
		t.Errorf("expected 2 action events, got %d", applies.Load())
	}
	want := []string{domain.ActionApproveFunding, domain.ActionAdjustBudget}
	for i, name := range want {
		if appliedActions[i] != name {
			t.Errorf("action %d: got %q, want %q", i, appliedActions[i], name)
		}
	}

	if !p.Funded() || p.Budget() != 1500000 {
		t.Errorf("engine processing must match Project.Process: funded=%v budget=%v",
			p.Funded(), p.Budget())
	}
}

func TestEngineMatchesDirectProcess(t *testing.T) {
	build := func() *domain.Project {
		return domain.NewProject("Metro Line", "Transportation", false, 800000, []domain.Action{
			domain.AdjustBudget(400000),
			domain.ConditionalApproval(domain.ApproveFunding(), 1000000),
			domain.CompleteProject(),
		})
	}

	direct := build()
	direct.Process()

	viaEngine := build()
	docket.New().Process(context.Background(), viaEngine)

	if direct.Funded() != viaEngine.Funded() ||
		direct.Budget() != viaEngine.Budget() ||
		direct.Completed() != viaEngine.Completed() {
		t.Errorf("engine diverged from direct processing: direct=%+v engine=%+v",
			[3]any{direct.Funded(), direct.Budget(), direct.Completed()},
			[3]any{viaEngine.Funded(), viaEngine.Budget(), viaEngine.Completed()})
	}
}
