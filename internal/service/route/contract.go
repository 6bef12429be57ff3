//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"truckboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, route entities.Route) (*entities.Route, error)
	GetByID(ctx context.Context, id int64) (*entities.Route, error)
	GetAll(ctx context.Context, userID int64, filter entities.RouteFilter) ([]entities.Route, error)
	Update(ctx context.Context, route entities.Route) (*entities.Route, error)
	Delete(ctx context.Context, id int64) error
	SetSuggestion(ctx context.Context, id int64, suggestion entities.RouteSuggestion) (*entities.Route, error)
}

// DeliveryReader resolves a route's waypoint IDs to the deliveries that
// still exist. Waypoints are stored unvalidated, so some may be gone.
type DeliveryReader interface {
	GetByIDs(ctx context.Context, userID int64, ids []int64) ([]entities.Delivery, error)
}

type Optimizer interface {
	OptimizeRoute(ctx context.Context, route entities.Route, stops []entities.Delivery) (*entities.RouteSuggestion, error)
}
