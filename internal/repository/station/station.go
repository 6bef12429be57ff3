package station

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"truckboard/internal/entities"
	"truckboard/internal/service/station"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var stationColumns = []string{
	"id", "name", "station_type", "latitude", "longitude", "geohash",
	"address", "amenities", "price_per_unit", "currency", "open_24h",
	"created_at", "updated_at",
}

type Postgres struct {
	querier Querier
}

func NewPostgres(querier Querier) *Postgres {
	return &Postgres{querier: querier}
}

const createStationQuery = `
INSERT INTO stations (name, station_type, latitude, longitude, geohash, address, amenities, price_per_unit, currency, open_24h)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, name, station_type, latitude, longitude, geohash, address, amenities, price_per_unit, currency, open_24h, created_at, updated_at`

func (r *Postgres) Create(ctx context.Context, stationEntity entities.Station) (*entities.Station, error) {
	stationModel := FromDomain(&stationEntity)

	var created StationDB
	err := r.querier.QueryRow(ctx, createStationQuery,
		stationModel.Name,
		stationModel.Type,
		stationModel.Latitude,
		stationModel.Longitude,
		stationModel.Geohash,
		stationModel.Address,
		stationModel.Amenities,
		stationModel.PricePerUnit,
		stationModel.Currency,
		stationModel.Open24h,
	).Scan(scanTargets(&created)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected station repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

const getStationByIDQuery = `
SELECT id, name, station_type, latitude, longitude, geohash, address, amenities, price_per_unit, currency, open_24h, created_at, updated_at
FROM stations
WHERE id = $1`

func (r *Postgres) GetByID(ctx context.Context, id int64) (*entities.Station, error) {
	var stationModel StationDB
	err := r.querier.QueryRow(ctx, getStationByIDQuery, id).Scan(scanTargets(&stationModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, station.ErrStationNotFound
		}
		return nil, fmt.Errorf("unexpected station repository get error: %w", err)
	}

	return ToDomain(&stationModel), nil
}

func (r *Postgres) GetAll(ctx context.Context, filter entities.StationFilter) ([]entities.Station, error) {
	builder := qb.
		Select(stationColumns...).
		From("stations").
		OrderBy("id")

	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"station_type": filter.Type.String()})
	}

	return r.queryStations(ctx, builder)
}

// GetByGeohashPrefixes returns stations whose geohash starts with any
// of the given prefixes. The prefixes come from cells covering a search
// radius, so this is a coarse candidate set, not the final answer.
func (r *Postgres) GetByGeohashPrefixes(ctx context.Context, prefixes []string, filter entities.StationFilter) ([]entities.Station, error) {
	if len(prefixes) == 0 {
		return []entities.Station{}, nil
	}

	prefixMatch := make(sq.Or, 0, len(prefixes))
	for _, prefix := range prefixes {
		prefixMatch = append(prefixMatch, sq.Like{"geohash": prefix + "%"})
	}

	builder := qb.
		Select(stationColumns...).
		From("stations").
		Where(prefixMatch).
		OrderBy("id")

	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"station_type": filter.Type.String()})
	}

	return r.queryStations(ctx, builder)
}

const updateStationQuery = `
UPDATE stations
SET name = $2, station_type = $3, latitude = $4, longitude = $5, geohash = $6, address = $7, amenities = $8, price_per_unit = $9, currency = $10, open_24h = $11, updated_at = NOW()
WHERE id = $1
RETURNING id, name, station_type, latitude, longitude, geohash, address, amenities, price_per_unit, currency, open_24h, created_at, updated_at`

func (r *Postgres) Update(ctx context.Context, stationEntity entities.Station) (*entities.Station, error) {
	stationModel := FromDomain(&stationEntity)

	var updated StationDB
	err := r.querier.QueryRow(ctx, updateStationQuery,
		stationModel.ID,
		stationModel.Name,
		stationModel.Type,
		stationModel.Latitude,
		stationModel.Longitude,
		stationModel.Geohash,
		stationModel.Address,
		stationModel.Amenities,
		stationModel.PricePerUnit,
		stationModel.Currency,
		stationModel.Open24h,
	).Scan(scanTargets(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, station.ErrStationNotFound
		}
		return nil, fmt.Errorf("unexpected station repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

const deleteStationQuery = `
DELETE FROM stations
WHERE id = $1`

func (r *Postgres) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, deleteStationQuery, id)
	if err != nil {
		return fmt.Errorf("unexpected station repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return station.ErrStationNotFound
	}

	return nil
}

const countStationsQuery = `
SELECT COUNT(*) FROM stations`

func (r *Postgres) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.querier.QueryRow(ctx, countStationsQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected station repository count error: %w", err)
	}

	return count, nil
}

func (r *Postgres) queryStations(ctx context.Context, builder sq.SelectBuilder) ([]entities.Station, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected station repository query build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected station repository select error: %w", err)
	}
	defer rows.Close()

	var stations []StationDB
	for rows.Next() {
		var stationModel StationDB
		if err := rows.Scan(scanTargets(&stationModel)...); err != nil {
			return nil, fmt.Errorf("unexpected station repository scan error: %w", err)
		}
		stations = append(stations, stationModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected station repository rows error: %w", err)
	}

	return ToDomainList(stations), nil
}

func scanTargets(s *StationDB) []interface{} {
	return []interface{}{
		&s.ID,
		&s.Name,
		&s.Type,
		&s.Latitude,
		&s.Longitude,
		&s.Geohash,
		&s.Address,
		&s.Amenities,
		&s.PricePerUnit,
		&s.Currency,
		&s.Open24h,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
}
