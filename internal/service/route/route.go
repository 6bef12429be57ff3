package route

import (
	"context"
	"fmt"

	"truckboard/internal/entities"
)

type Route struct {
	repository Repository
	deliveries DeliveryReader
	optimizer  Optimizer
}

func New(repository Repository, deliveries DeliveryReader, optimizer Optimizer) *Route {
	return &Route{
		repository: repository,
		deliveries: deliveries,
		optimizer:  optimizer,
	}
}

func (s *Route) CreateRoute(ctx context.Context, userID int64, draft entities.RouteDraft) (*entities.Route, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	route, err := s.repository.Create(ctx, newRoute(userID, draft))
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	return route, nil
}

func (s *Route) GetRoute(ctx context.Context, userID, id int64) (*entities.Route, error) {
	route, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	if route.UserID != userID {
		return nil, ErrNotOwner
	}

	return route, nil
}

func (s *Route) GetRoutes(ctx context.Context, userID int64, filter entities.RouteFilter) ([]entities.Route, error) {
	routes, err := s.repository.GetAll(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("get routes: %w", err)
	}

	return routes, nil
}

// UpdateRoute replaces the whole writable field set. Any earlier
// suggestion was computed for the old waypoints, so it is dropped.
func (s *Route) UpdateRoute(ctx context.Context, userID, id int64, draft entities.RouteDraft) (*entities.Route, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	if current.UserID != userID {
		return nil, ErrNotOwner
	}

	replacement := newRoute(userID, draft)
	replacement.ID = current.ID
	replacement.CreatedAt = current.CreatedAt

	route, err := s.repository.Update(ctx, replacement)
	if err != nil {
		return nil, fmt.Errorf("update route: %w", err)
	}

	return route, nil
}

func (s *Route) DeleteRoute(ctx context.Context, userID, id int64) error {
	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get route: %w", err)
	}
	if current.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete route: %w", err)
	}

	return nil
}

// OptimizeRoute asks the collaborator for a stop order over the route's
// resolvable waypoints, checks the answer covers exactly the submitted
// stops, and stores it on the route.
func (s *Route) OptimizeRoute(ctx context.Context, userID, id int64) (*entities.Route, error) {
	route, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	if route.UserID != userID {
		return nil, ErrNotOwner
	}

	stops, err := s.deliveries.GetByIDs(ctx, userID, route.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("resolve waypoints: %w", err)
	}
	if len(stops) == 0 {
		return nil, ErrNoWaypoints
	}

	suggestion, err := s.optimizer.OptimizeRoute(ctx, *route, stops)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	if !isPermutationOfStops(suggestion.WaypointOrder, stops) {
		return nil, ErrBadSuggestion
	}

	updated, err := s.repository.SetSuggestion(ctx, route.ID, *suggestion)
	if err != nil {
		return nil, fmt.Errorf("store suggestion: %w", err)
	}

	return updated, nil
}

func validateDraft(draft entities.RouteDraft) error {
	if draft.Date.IsZero() {
		return ErrInvalidDate
	}
	if draft.DistanceKM < 0 {
		return ErrInvalidDistance
	}
	if draft.DurationMinutes < 0 {
		return ErrInvalidDuration
	}
	return nil
}

func newRoute(userID int64, draft entities.RouteDraft) entities.Route {
	return entities.Route{
		UserID:          userID,
		Date:            draft.Date,
		Waypoints:       draft.Waypoints,
		DistanceKM:      draft.DistanceKM,
		DurationMinutes: draft.DurationMinutes,
	}
}

func isPermutationOfStops(order []int64, stops []entities.Delivery) bool {
	if len(order) != len(stops) {
		return false
	}

	remaining := make(map[int64]int, len(stops))
	for _, stop := range stops {
		remaining[stop.ID]++
	}
	for _, id := range order {
		if remaining[id] == 0 {
			return false
		}
		remaining[id]--
	}
	return true
}
