//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_delete_test
package station_delete

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
	DeleteStation(ctx context.Context, id int64) error
}
