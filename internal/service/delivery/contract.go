//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"truckboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByIDs(ctx context.Context, userID int64, ids []int64) ([]entities.Delivery, error)
	GetAll(ctx context.Context, userID int64, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	Update(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	Delete(ctx context.Context, id int64) error
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
}
