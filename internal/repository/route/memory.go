package route

import (
	"context"
	"sort"
	"sync"
	"time"

	"truckboard/internal/entities"
	"truckboard/internal/service/route"
)

// Memory keeps routes in process memory. It is the default storage
// driver and mirrors the sentinel behavior of the postgres driver.
type Memory struct {
	mu     sync.RWMutex
	routes map[int64]entities.Route
	nextID int64
}

func NewMemory() *Memory {
	return &Memory{routes: make(map[int64]entities.Route)}
}

func (r *Memory) Create(_ context.Context, routeEntity entities.Route) (*entities.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextID++
	routeEntity.ID = r.nextID
	routeEntity.Waypoints = cloneWaypoints(routeEntity.Waypoints)
	routeEntity.Suggestion = cloneSuggestion(routeEntity.Suggestion)
	routeEntity.CreatedAt = now
	routeEntity.UpdatedAt = now
	r.routes[routeEntity.ID] = routeEntity

	out := cloneRoute(routeEntity)
	return &out, nil
}

func (r *Memory) GetByID(_ context.Context, id int64) (*entities.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routeEntity, ok := r.routes[id]
	if !ok {
		return nil, route.ErrRouteNotFound
	}

	out := cloneRoute(routeEntity)
	return &out, nil
}

func (r *Memory) GetAll(_ context.Context, userID int64, filter entities.RouteFilter) ([]entities.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var dayStart, dayEnd time.Time
	if filter.Date != nil {
		// Date filtering is day granular.
		dayStart = filter.Date.UTC().Truncate(24 * time.Hour)
		dayEnd = dayStart.Add(24 * time.Hour)
	}

	routes := make([]entities.Route, 0)
	for _, routeEntity := range r.routes {
		if routeEntity.UserID != userID {
			continue
		}
		if filter.Date != nil {
			if routeEntity.Date.Before(dayStart) || !routeEntity.Date.Before(dayEnd) {
				continue
			}
		}
		routes = append(routes, cloneRoute(routeEntity))
	}

	sort.Slice(routes, func(i, j int) bool { return routes[i].ID < routes[j].ID })

	return routes, nil
}

func (r *Memory) Update(_ context.Context, routeEntity entities.Route) (*entities.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.routes[routeEntity.ID]
	if !ok {
		return nil, route.ErrRouteNotFound
	}

	// Identity and creation time stay as stored, same as the SQL update.
	routeEntity.UserID = stored.UserID
	routeEntity.CreatedAt = stored.CreatedAt
	routeEntity.UpdatedAt = time.Now().UTC()
	routeEntity.Waypoints = cloneWaypoints(routeEntity.Waypoints)
	routeEntity.Suggestion = cloneSuggestion(routeEntity.Suggestion)
	r.routes[routeEntity.ID] = routeEntity

	out := cloneRoute(routeEntity)
	return &out, nil
}

func (r *Memory) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.routes[id]; !ok {
		return route.ErrRouteNotFound
	}

	delete(r.routes, id)
	return nil
}

func (r *Memory) SetSuggestion(_ context.Context, id int64, suggestion entities.RouteSuggestion) (*entities.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	routeEntity, ok := r.routes[id]
	if !ok {
		return nil, route.ErrRouteNotFound
	}

	routeEntity.Suggestion = cloneSuggestion(&suggestion)
	routeEntity.Optimized = true
	routeEntity.UpdatedAt = time.Now().UTC()
	r.routes[id] = routeEntity

	out := cloneRoute(routeEntity)
	return &out, nil
}

func cloneRoute(routeEntity entities.Route) entities.Route {
	routeEntity.Waypoints = cloneWaypoints(routeEntity.Waypoints)
	routeEntity.Suggestion = cloneSuggestion(routeEntity.Suggestion)
	return routeEntity
}

func cloneWaypoints(waypoints []int64) []int64 {
	return append([]int64{}, waypoints...)
}

func cloneSuggestion(suggestion *entities.RouteSuggestion) *entities.RouteSuggestion {
	if suggestion == nil {
		return nil
	}
	clone := *suggestion
	clone.WaypointOrder = append([]int64{}, suggestion.WaypointOrder...)
	return &clone
}
