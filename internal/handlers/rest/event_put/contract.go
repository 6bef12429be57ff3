//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=event_put_test
package event_put

import (
	"context"

	"truckboard/internal/entities"
	"truckboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateEntry(ctx context.Context, userID, id int64, draft entities.ScheduleEntryDraft) (*entities.ScheduleEntry, error)
}
