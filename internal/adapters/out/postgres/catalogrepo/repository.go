package catalogrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.CatalogReader = (*GormCatalogReader)(nil)

// GormCatalogReader implements ports.CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

func (r *GormCatalogReader) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

func (r *GormCatalogReader) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

func (r *GormCatalogReader) ListRestaurantIDsByOwner(ctx context.Context, ownerID kernel.UUID) ([]kernel.UUID, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("id").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, kernel.UUIDFromGoogle(id))
	}
	return ids, nil
}
