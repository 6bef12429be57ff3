package route

import "truckboard/internal/entities"

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}

	waypoints := r.Waypoints
	if waypoints == nil {
		waypoints = []int64{}
	}

	return &entities.Route{
		ID:              r.ID,
		UserID:          r.UserID,
		Date:            r.Date,
		Waypoints:       waypoints,
		DistanceKM:      r.DistanceKM,
		DurationMinutes: r.DurationMinutes,
		Optimized:       r.Optimized,
		Suggestion:      suggestionToDomain(r.Suggestion),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func ToDomainList(routes []RouteDB) []entities.Route {
	domainRoutes := make([]entities.Route, 0, len(routes))
	for i := range routes {
		domainRoutes = append(domainRoutes, *ToDomain(&routes[i]))
	}
	return domainRoutes
}

func FromDomain(r *entities.Route) *RouteDB {
	if r == nil {
		return nil
	}

	// The waypoints column is NOT NULL, a nil slice would encode as NULL.
	waypoints := r.Waypoints
	if waypoints == nil {
		waypoints = []int64{}
	}

	return &RouteDB{
		ID:              r.ID,
		UserID:          r.UserID,
		Date:            r.Date,
		Waypoints:       waypoints,
		DistanceKM:      r.DistanceKM,
		DurationMinutes: r.DurationMinutes,
		Optimized:       r.Optimized,
		Suggestion:      suggestionFromDomain(r.Suggestion),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func suggestionToDomain(s *RouteSuggestionDB) *entities.RouteSuggestion {
	if s == nil {
		return nil
	}

	return &entities.RouteSuggestion{
		WaypointOrder:   s.WaypointOrder,
		DistanceKM:      s.DistanceKM,
		DurationMinutes: s.DurationMinutes,
		Summary:         s.Summary,
	}
}

func suggestionFromDomain(s *entities.RouteSuggestion) *RouteSuggestionDB {
	if s == nil {
		return nil
	}

	return &RouteSuggestionDB{
		WaypointOrder:   s.WaypointOrder,
		DistanceKM:      s.DistanceKM,
		DurationMinutes: s.DurationMinutes,
		Summary:         s.Summary,
	}
}
