package station

import "truckboard/internal/entities"

func ToDomain(s *StationDB) *entities.Station {
	if s == nil {
		return nil
	}

	amenities := s.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &entities.Station{
		ID:           s.ID,
		Name:         s.Name,
		Type:         entities.StationType(s.Type),
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		Geohash:      s.Geohash,
		Address:      s.Address,
		Amenities:    amenities,
		PricePerUnit: s.PricePerUnit,
		Currency:     s.Currency,
		Open24h:      s.Open24h,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func ToDomainList(stations []StationDB) []entities.Station {
	domainStations := make([]entities.Station, 0, len(stations))
	for i := range stations {
		domainStations = append(domainStations, *ToDomain(&stations[i]))
	}
	return domainStations
}

func FromDomain(s *entities.Station) *StationDB {
	if s == nil {
		return nil
	}

	// The amenities column is NOT NULL, a nil slice would encode as NULL.
	amenities := s.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &StationDB{
		ID:           s.ID,
		Name:         s.Name,
		Type:         s.Type.String(),
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		Geohash:      s.Geohash,
		Address:      s.Address,
		Amenities:    amenities,
		PricePerUnit: s.PricePerUnit,
		Currency:     s.Currency,
		Open24h:      s.Open24h,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
