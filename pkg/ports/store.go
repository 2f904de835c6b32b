package ports

import (
	"context"

	"github.com/docket-run/docket/pkg/manifest"
)

// ProjectStore persists declarative project records for the serve
// surface, keyed by project name. The core never touches a store: what is
// saved is the manifest spec (action declarations plus current scalars),
// never live domain values.
type ProjectStore interface {
	// Save persists the record under the given ID, overwriting any
	// previous version.
	Save(ctx context.Context, id string, spec *manifest.ProjectSpec) error

	// Load retrieves the record for the given ID.
	// Returns domain.ErrProjectNotFound if it does not exist.
	Load(ctx context.Context, id string) (*manifest.ProjectSpec, error)

	// Delete removes the record for the given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored records.
	List(ctx context.Context) ([]string, error)
}
