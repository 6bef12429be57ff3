package station

import (
	"context"
	"fmt"
	"sort"

	"truckboard/internal/entities"
	"truckboard/pkg/geo"
)

// geohashPrecision is the stored cell size; prefix searches shorten it
// as needed.
const geohashPrecision = 12

type Station struct {
	repository Repository
}

func New(repository Repository) *Station {
	return &Station{
		repository: repository,
	}
}

func (s *Station) CreateStation(ctx context.Context, draft entities.StationDraft) (*entities.Station, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	station, err := s.repository.Create(ctx, newStation(draft))
	if err != nil {
		return nil, fmt.Errorf("create station: %w", err)
	}

	return station, nil
}

func (s *Station) GetStation(ctx context.Context, id int64) (*entities.Station, error) {
	station, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get station: %w", err)
	}

	return station, nil
}

func (s *Station) GetStations(ctx context.Context, filter entities.StationFilter) ([]entities.Station, error) {
	if filter.Type != "" && !isValidType(filter.Type) {
		return nil, ErrInvalidType
	}

	stations, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get stations: %w", err)
	}

	return stations, nil
}

// UpdateStation replaces the whole writable field set and recomputes
// the stored geohash from the new coordinates.
func (s *Station) UpdateStation(ctx context.Context, id int64, draft entities.StationDraft) (*entities.Station, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get station: %w", err)
	}

	replacement := newStation(draft)
	replacement.ID = current.ID
	replacement.CreatedAt = current.CreatedAt

	station, err := s.repository.Update(ctx, replacement)
	if err != nil {
		return nil, fmt.Errorf("update station: %w", err)
	}

	return station, nil
}

func (s *Station) DeleteStation(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete station: %w", err)
	}

	return nil
}

// CountStations reports how many stations are stored. Startup seeding
// uses it to decide whether fixtures are needed.
func (s *Station) CountStations(ctx context.Context) (int64, error) {
	count, err := s.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count stations: %w", err)
	}

	return count, nil
}

// Nearby returns the stations within the query radius, closest first.
// Candidates are prefiltered by geohash cover before the exact
// great-circle distance is applied.
func (s *Station) Nearby(ctx context.Context, query entities.NearbyQuery) ([]entities.NearbyStation, error) {
	center := geo.Point{Latitude: query.Latitude, Longitude: query.Longitude}
	if !center.Valid() {
		return nil, ErrInvalidCoordinates
	}
	if !isValidRadius(query.RadiusKM) {
		return nil, ErrInvalidRadius
	}
	if query.Type != "" && !isValidType(query.Type) {
		return nil, ErrInvalidType
	}

	cells := geo.CoverCells(center, query.RadiusKM)
	candidates, err := s.repository.GetByGeohashPrefixes(ctx, cells, entities.StationFilter{Type: query.Type})
	if err != nil {
		return nil, fmt.Errorf("get stations by geohash: %w", err)
	}

	nearby := make([]entities.NearbyStation, 0, len(candidates))
	for _, candidate := range candidates {
		distance := geo.Distance(center, geo.Point{
			Latitude:  candidate.Latitude,
			Longitude: candidate.Longitude,
		})
		if distance > query.RadiusKM {
			continue
		}
		nearby = append(nearby, entities.NearbyStation{
			Station:    candidate,
			DistanceKM: distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKM != nearby[j].DistanceKM {
			return nearby[i].DistanceKM < nearby[j].DistanceKM
		}
		return nearby[i].ID < nearby[j].ID
	})

	return nearby, nil
}

func validateDraft(draft entities.StationDraft) error {
	if !isValidName(draft.Name) {
		return ErrMissingRequiredFields
	}
	if !isValidType(draft.Type) {
		return ErrInvalidType
	}
	point := geo.Point{Latitude: draft.Latitude, Longitude: draft.Longitude}
	if !point.Valid() {
		return ErrInvalidCoordinates
	}
	return nil
}

func newStation(draft entities.StationDraft) entities.Station {
	point := geo.Point{Latitude: draft.Latitude, Longitude: draft.Longitude}

	return entities.Station{
		Name:         draft.Name,
		Type:         draft.Type,
		Latitude:     draft.Latitude,
		Longitude:    draft.Longitude,
		Geohash:      geo.Encode(point, geohashPrecision),
		Address:      draft.Address,
		Amenities:    draft.Amenities,
		PricePerUnit: draft.PricePerUnit,
		Currency:     draft.Currency,
		Open24h:      draft.Open24h,
	}
}
