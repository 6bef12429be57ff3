package route

import "time"

type RouteDB struct {
	ID              int64
	UserID          int64
	Date            time.Time
	Waypoints       []int64
	DistanceKM      float64
	DurationMinutes int64
	Optimized       bool
	Suggestion      *RouteSuggestionDB
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RouteSuggestionDB is stored as a jsonb column, hence the tags.
type RouteSuggestionDB struct {
	WaypointOrder   []int64 `json:"waypoint_order"`
	DistanceKM      float64 `json:"distance_km"`
	DurationMinutes int64   `json:"duration_minutes"`
	Summary         string  `json:"summary"`
}
