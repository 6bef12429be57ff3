//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stations_get_test
package stations_get

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
	GetStations(ctx context.Context, filter entities.StationFilter) ([]entities.Station, error)
}
