//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_test
package station

import (
	"context"

	"truckboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, station entities.Station) (*entities.Station, error)
	GetByID(ctx context.Context, id int64) (*entities.Station, error)
	GetAll(ctx context.Context, filter entities.StationFilter) ([]entities.Station, error)
	GetByGeohashPrefixes(ctx context.Context, prefixes []string, filter entities.StationFilter) ([]entities.Station, error)
	Update(ctx context.Context, station entities.Station) (*entities.Station, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
