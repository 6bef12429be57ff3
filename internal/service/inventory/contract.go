//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
package inventory

import (
	"context"

	"truckboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*entities.InventoryItem, error)
	GetAll(ctx context.Context, userID int64, filter entities.InventoryFilter) ([]entities.InventoryItem, error)
	Update(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error)
	Delete(ctx context.Context, id int64) error
}
