package dto

import (
	"time"

	"truckboard/internal/entities"
)

type Route struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	Date            time.Time        `json:"date"`
	Waypoints       []int64          `json:"waypoints"`
	DistanceKM      float64          `json:"distance_km"`
	DurationMinutes int64            `json:"duration_minutes"`
	Optimized       bool             `json:"optimized"`
	Suggestion      *RouteSuggestion `json:"suggestion,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type RouteSuggestion struct {
	WaypointOrder   []int64 `json:"waypoint_order"`
	DistanceKM      float64 `json:"distance_km"`
	DurationMinutes int64   `json:"duration_minutes"`
	Summary         string  `json:"summary"`
}

type RouteCreate struct {
	Date            time.Time `json:"date"`
	Waypoints       []int64   `json:"waypoints"`
	DistanceKM      float64   `json:"distance_km"`
	DurationMinutes int64     `json:"duration_minutes"`
}

// RouteUpdate replaces the route wholesale; a stored suggestion is
// dropped because it was computed for the old waypoints.
type RouteUpdate struct {
	Date            time.Time `json:"date"`
	Waypoints       []int64   `json:"waypoints"`
	DistanceKM      float64   `json:"distance_km"`
	DurationMinutes int64     `json:"duration_minutes"`
}

func NewRoute(entity entities.Route) Route {
	route := Route{
		ID:              entity.ID,
		UserID:          entity.UserID,
		Date:            entity.Date,
		Waypoints:       entity.Waypoints,
		DistanceKM:      entity.DistanceKM,
		DurationMinutes: entity.DurationMinutes,
		Optimized:       entity.Optimized,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
	if entity.Suggestion != nil {
		route.Suggestion = &RouteSuggestion{
			WaypointOrder:   entity.Suggestion.WaypointOrder,
			DistanceKM:      entity.Suggestion.DistanceKM,
			DurationMinutes: entity.Suggestion.DurationMinutes,
			Summary:         entity.Suggestion.Summary,
		}
	}
	return route
}

func NewRoutes(routes []entities.Route) []Route {
	list := make([]Route, len(routes))
	for i, route := range routes {
		list[i] = NewRoute(route)
	}
	return list
}
