package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"truckboard/internal/entities"
	"truckboard/internal/service/route"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Postgres struct {
	querier Querier
}

func NewPostgres(querier Querier) *Postgres {
	return &Postgres{querier: querier}
}

const createRouteQuery = `
INSERT INTO routes (user_id, route_date, waypoints, distance_km, duration_minutes, optimized, suggestion)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, route_date, waypoints, distance_km, duration_minutes, optimized, suggestion, created_at, updated_at`

func (r *Postgres) Create(ctx context.Context, routeEntity entities.Route) (*entities.Route, error) {
	routeModel := FromDomain(&routeEntity)

	var created RouteDB
	err := r.querier.QueryRow(ctx, createRouteQuery,
		routeModel.UserID,
		routeModel.Date,
		routeModel.Waypoints,
		routeModel.DistanceKM,
		routeModel.DurationMinutes,
		routeModel.Optimized,
		routeModel.Suggestion,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.Waypoints,
		&created.DistanceKM,
		&created.DurationMinutes,
		&created.Optimized,
		&created.Suggestion,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

const getRouteByIDQuery = `
SELECT id, user_id, route_date, waypoints, distance_km, duration_minutes, optimized, suggestion, created_at, updated_at
FROM routes
WHERE id = $1`

func (r *Postgres) GetByID(ctx context.Context, id int64) (*entities.Route, error) {
	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, getRouteByIDQuery, id).Scan(
		&routeModel.ID,
		&routeModel.UserID,
		&routeModel.Date,
		&routeModel.Waypoints,
		&routeModel.DistanceKM,
		&routeModel.DurationMinutes,
		&routeModel.Optimized,
		&routeModel.Suggestion,
		&routeModel.CreatedAt,
		&routeModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository get error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

func (r *Postgres) GetAll(ctx context.Context, userID int64, filter entities.RouteFilter) ([]entities.Route, error) {
	builder := qb.
		Select("id", "user_id", "route_date", "waypoints", "distance_km", "duration_minutes", "optimized", "suggestion", "created_at", "updated_at").
		From("routes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	if filter.Date != nil {
		// Date filtering is day granular.
		dayStart := filter.Date.UTC().Truncate(24 * time.Hour)
		builder = builder.
			Where(sq.GtOrEq{"route_date": dayStart}).
			Where(sq.Lt{"route_date": dayStart.Add(24 * time.Hour)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository query build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository get all error: %w", err)
	}
	defer rows.Close()

	var routes []RouteDB
	for rows.Next() {
		var routeModel RouteDB
		err := rows.Scan(
			&routeModel.ID,
			&routeModel.UserID,
			&routeModel.Date,
			&routeModel.Waypoints,
			&routeModel.DistanceKM,
			&routeModel.DurationMinutes,
			&routeModel.Optimized,
			&routeModel.Suggestion,
			&routeModel.CreatedAt,
			&routeModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository scan error: %w", err)
		}
		routes = append(routes, routeModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route repository rows error: %w", err)
	}

	return ToDomainList(routes), nil
}

const updateRouteQuery = `
UPDATE routes
SET route_date = $2, waypoints = $3, distance_km = $4, duration_minutes = $5, optimized = $6, suggestion = $7, updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, route_date, waypoints, distance_km, duration_minutes, optimized, suggestion, created_at, updated_at`

func (r *Postgres) Update(ctx context.Context, routeEntity entities.Route) (*entities.Route, error) {
	routeModel := FromDomain(&routeEntity)

	var updated RouteDB
	err := r.querier.QueryRow(ctx, updateRouteQuery,
		routeModel.ID,
		routeModel.Date,
		routeModel.Waypoints,
		routeModel.DistanceKM,
		routeModel.DurationMinutes,
		routeModel.Optimized,
		routeModel.Suggestion,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Date,
		&updated.Waypoints,
		&updated.DistanceKM,
		&updated.DurationMinutes,
		&updated.Optimized,
		&updated.Suggestion,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

const deleteRouteQuery = `
DELETE FROM routes
WHERE id = $1`

func (r *Postgres) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, deleteRouteQuery, id)
	if err != nil {
		return fmt.Errorf("unexpected route repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return route.ErrRouteNotFound
	}

	return nil
}

const setRouteSuggestionQuery = `
UPDATE routes
SET suggestion = $2, optimized = TRUE, updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, route_date, waypoints, distance_km, duration_minutes, optimized, suggestion, created_at, updated_at`

func (r *Postgres) SetSuggestion(ctx context.Context, id int64, suggestion entities.RouteSuggestion) (*entities.Route, error) {
	var updated RouteDB
	err := r.querier.QueryRow(ctx, setRouteSuggestionQuery, id, suggestionFromDomain(&suggestion)).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Date,
		&updated.Waypoints,
		&updated.DistanceKM,
		&updated.DurationMinutes,
		&updated.Optimized,
		&updated.Suggestion,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository set suggestion error: %w", err)
	}

	return ToDomain(&updated), nil
}
