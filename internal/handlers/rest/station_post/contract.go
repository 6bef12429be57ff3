//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_post_test
package station_post

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
	CreateStation(ctx context.Context, draft entities.StationDraft) (*entities.Station, error)
}
