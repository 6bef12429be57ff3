//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=advisor_test
package advisor

import (
	"context"

	"truckboard/internal/entities"
)

type DeliveryReader interface {
	GetAll(ctx context.Context, userID int64, filter entities.DeliveryFilter) ([]entities.Delivery, error)
}

type ScheduleReader interface {
	GetAll(ctx context.Context, userID int64, filter entities.ScheduleFilter) ([]entities.ScheduleEntry, error)
}

type Recommender interface {
	Recommendations(ctx context.Context, deliveries []entities.Delivery, entries []entities.ScheduleEntry) ([]string, error)
}
