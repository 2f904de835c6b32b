package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docket-run/docket/pkg/adapters/sqlite"
	"github.com/docket-run/docket/pkg/manifest"
	"github.com/docket-run/docket/pkg/ports"
)

func TestSQLiteStore_Contract(t *testing.T) {
	store, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ports.RunProjectStoreContract(t, store)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "docket.db")
	ctx := context.Background()

	store, err := sqlite.NewStore(dsn)
	require.NoError(t, err)

	spec := &manifest.ProjectSpec{Name: "National Museum", Department: "Culture", Budget: 3000000}
	require.NoError(t, store.Save(ctx, "national-museum", spec))
	require.NoError(t, store.Close())

	reopened, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	loaded, err := reopened.Load(ctx, "national-museum")
	require.NoError(t, err)
	assert.Equal(t, "National Museum", loaded.Name)
	assert.Equal(t, 3000000.0, loaded.Budget)
}
