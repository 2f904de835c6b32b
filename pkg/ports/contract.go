package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docket-run/docket/pkg/domain"
	"github.com/docket-run/docket/pkg/manifest"
)

// RunProjectStoreContract runs a suite of tests verifying that a
// ProjectStore implementation adheres to the interface contract.
func RunProjectStoreContract(t *testing.T, store ProjectStore) {
	ctx := context.Background()
	id := "contract-test-" + time.Now().Format("20060102150405")

	spec := &manifest.ProjectSpec{
		Name:       "River Bridge",
		Department: "Transportation",
		Budget:     1000000,
		Actions: []manifest.ActionSpec{
			{Type: domain.ActionApproveFunding},
			{Type: domain.ActionAdjustBudget, Params: map[string]any{"delta": 500000.0}},
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, id, spec)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, spec.Name, loaded.Name)
		assert.Equal(t, spec.Budget, loaded.Budget)
		require.Len(t, loaded.Actions, 2)
		assert.Equal(t, domain.ActionApproveFunding, loaded.Actions[0].Type)

		// The loaded spec must still build a working project.
		p, err := loaded.Build()
		require.NoError(t, err)
		p.Process()
		assert.True(t, p.Funded())
		assert.Equal(t, 1500000.0, p.Budget())
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		updated := *spec
		updated.Funded = true
		updated.Budget = 1500000

		require.NoError(t, store.Save(ctx, id, &updated))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.True(t, loaded.Funded)
		assert.Equal(t, 1500000.0, loaded.Budget)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("Isolation", func(t *testing.T) {
		// Mutating a loaded record must not change the stored one.
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Budget = -1

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.NotEqual(t, -1.0, again.Budget)
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, id))

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, ids, id)

		// Deleting again is not an error.
		assert.NoError(t, store.Delete(ctx, id))
	})
}
