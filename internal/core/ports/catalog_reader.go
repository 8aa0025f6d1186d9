package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CatalogReader reads restaurant and menu data owned by the menu service.
// Missing records fail with errs.ErrObjectNotFound.
type CatalogReader interface {
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// ListRestaurantIDsByOwner returns the restaurants owned by ownerID,
	// possibly none.
	ListRestaurantIDsByOwner(ctx context.Context, ownerID kernel.UUID) ([]kernel.UUID, error)
}
