package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
projects:
  - name: River Bridge
    department: Transportation
    funded: false
    budget: 1000000
    actions:
      - type: approve_funding
      - type: adjust_budget
        delta: 500000
  - name: Highway Expansion
    department: Transportation
    funded: false
    budget: 1200000
    actions:
      - type: conditional_approval
        threshold: 1000000
        action:
          type: approve_funding
`

func TestParseAndBuild(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Projects, 2)

	registry, err := m.Build()
	require.NoError(t, err)
	require.Equal(t, 2, registry.Len())

	registry.ProcessAll()

	projects := registry.Projects()
	assert.True(t, projects[0].Funded())
	assert.Equal(t, 1500000.0, projects[0].Budget())
	assert.True(t, projects[1].Funded(), "gate should pass at 1200000 >= 1000000")
}

func TestParseRejectsInvalidManifests(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing project name",
			yaml:    "projects:\n  - department: Culture\n",
			wantErr: "name is required",
		},
		{
			name: "duplicate project name",
			yaml: "projects:\n  - name: A\n  - name: A\n",
			wantErr: "duplicate project name",
		},
		{
			name: "unknown action type",
			yaml: "projects:\n  - name: A\n    actions:\n      - type: demolish\n",
			wantErr: `unknown action type "demolish"`,
		},
		{
			name: "missing action type",
			yaml: "projects:\n  - name: A\n    actions:\n      - delta: 5\n",
			wantErr: "action type is required",
		},
		{
			name: "adjust_budget without delta",
			yaml: "projects:\n  - name: A\n    actions:\n      - type: adjust_budget\n",
			wantErr: "requires a delta",
		},
		{
			name: "conditional without threshold",
			yaml: "projects:\n  - name: A\n    actions:\n      - type: conditional_approval\n        action:\n          type: approve_funding\n",
			wantErr: "requires a threshold",
		},
		{
			name: "conditional without child",
			yaml: "projects:\n  - name: A\n    actions:\n      - type: conditional_approval\n        threshold: 100\n",
			wantErr: "requires a child action",
		},
		{
			name: "transfer without department",
			yaml: "projects:\n  - name: A\n    actions:\n      - type: department_transfer\n",
			wantErr: "requires a department",
		},
		{
			name: "invalid child action",
			yaml: "projects:\n  - name: A\n    actions:\n      - type: conditional_approval\n        threshold: 100\n        action:\n          type: bulldoze\n",
			wantErr: `unknown action type "bulldoze"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildNestedConditional(t *testing.T) {
	spec := ActionSpec{
		Type: "conditional_approval",
		Params: map[string]any{
			"threshold": 1000000,
			"action": map[string]any{
				"type":      "conditional_approval",
				"threshold": 1500000,
				"action":    map[string]any{"type": "approve_funding"},
			},
		},
	}

	action, err := spec.Build()
	require.NoError(t, err)

	project := ProjectSpec{Name: "Metro Line", Department: "Transportation", Budget: 2000000}
	p, err := project.Build()
	require.NoError(t, err)

	action.Apply(p)
	assert.True(t, p.Funded(), "both thresholds are met at 2000000")
}

func TestSnapshotAndApplyState(t *testing.T) {
	spec := ProjectSpec{
		Name:       "City Park",
		Department: "Environment",
		Funded:     true,
		Budget:     500000,
		Actions: []ActionSpec{
			{Type: "department_transfer", Params: map[string]any{"department": "Urban Development"}},
			{Type: "complete_project"},
		},
	}

	p, err := spec.Build()
	require.NoError(t, err)
	p.Process()

	snap := Snapshot(p)
	assert.Equal(t, "City Park", snap.Name)
	assert.Equal(t, "Urban Development", snap.Department)
	assert.True(t, snap.Completed)

	spec.ApplyState(p)
	assert.Equal(t, "Urban Development", spec.Department)
	assert.True(t, spec.Completed)
	assert.Equal(t, 500000.0, spec.Budget)
}

func TestParseAcceptsFractionalBudgets(t *testing.T) {
	m, err := Parse([]byte("projects:\n  - name: A\n    budget: 1234.56\n    actions:\n      - type: adjust_budget\n        delta: -0.56\n"))
	require.NoError(t, err)

	registry, err := m.Build()
	require.NoError(t, err)
	registry.ProcessAll()

	assert.Equal(t, 1234.0, registry.Projects()[0].Budget())
}
