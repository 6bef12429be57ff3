//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"

	"truckboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, entry entities.ScheduleEntry) (*entities.ScheduleEntry, error)
	GetByID(ctx context.Context, id int64) (*entities.ScheduleEntry, error)
	GetAll(ctx context.Context, userID int64, filter entities.ScheduleFilter) ([]entities.ScheduleEntry, error)
	Update(ctx context.Context, entry entities.ScheduleEntry) (*entities.ScheduleEntry, error)
	Delete(ctx context.Context, id int64) error
}
