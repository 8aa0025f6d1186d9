// Package catalogrepo reads restaurants and menu items. The order service
// never writes the catalog; rows are owned by the menu service.
package catalogrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Phone       string
	Address     string
	DeliveryFee decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsActive    bool
	CreatedAt   time.Time
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsAvailable  bool
	CreatedAt    time.Time
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	return catalog.NewRestaurant(
		kernel.UUIDFromGoogle(dto.ID),
		kernel.UUIDFromGoogle(dto.OwnerID),
		dto.Name,
		dto.Phone,
		dto.Address,
		fee,
		dto.IsActive,
	)
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewMenuItem(
		kernel.UUIDFromGoogle(dto.ID),
		kernel.UUIDFromGoogle(dto.RestaurantID),
		dto.Name,
		price,
		dto.IsAvailable,
	)
}
