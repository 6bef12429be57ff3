//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=event_delete_test
package event_delete

import (
	"context"

	"truckboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteEntry(ctx context.Context, userID, id int64) error
}
