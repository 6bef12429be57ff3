package station

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"truckboard/internal/entities"
	"truckboard/internal/service/station"
)

// Memory keeps stations in process memory. It is the default storage
// driver and mirrors the sentinel behavior of the postgres driver.
type Memory struct {
	mu       sync.RWMutex
	stations map[int64]entities.Station
	nextID   int64
}

func NewMemory() *Memory {
	return &Memory{stations: make(map[int64]entities.Station)}
}

func (r *Memory) Create(_ context.Context, stationEntity entities.Station) (*entities.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextID++
	stationEntity.ID = r.nextID
	stationEntity.Amenities = cloneAmenities(stationEntity.Amenities)
	stationEntity.CreatedAt = now
	stationEntity.UpdatedAt = now
	r.stations[stationEntity.ID] = stationEntity

	out := stationEntity
	out.Amenities = cloneAmenities(stationEntity.Amenities)
	return &out, nil
}

func (r *Memory) GetByID(_ context.Context, id int64) (*entities.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stationEntity, ok := r.stations[id]
	if !ok {
		return nil, station.ErrStationNotFound
	}

	out := stationEntity
	out.Amenities = cloneAmenities(stationEntity.Amenities)
	return &out, nil
}

func (r *Memory) GetAll(_ context.Context, filter entities.StationFilter) ([]entities.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]entities.Station, 0)
	for _, stationEntity := range r.stations {
		if filter.Type != "" && stationEntity.Type != filter.Type {
			continue
		}
		stationEntity.Amenities = cloneAmenities(stationEntity.Amenities)
		stations = append(stations, stationEntity)
	}

	sort.Slice(stations, func(i, j int) bool { return stations[i].ID < stations[j].ID })

	return stations, nil
}

// GetByGeohashPrefixes returns stations whose geohash starts with any
// of the given prefixes. The prefixes come from cells covering a search
// radius, so this is a coarse candidate set, not the final answer.
func (r *Memory) GetByGeohashPrefixes(_ context.Context, prefixes []string, filter entities.StationFilter) ([]entities.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]entities.Station, 0)
	for _, stationEntity := range r.stations {
		if filter.Type != "" && stationEntity.Type != filter.Type {
			continue
		}
		if !hasAnyPrefix(stationEntity.Geohash, prefixes) {
			continue
		}
		stationEntity.Amenities = cloneAmenities(stationEntity.Amenities)
		stations = append(stations, stationEntity)
	}

	sort.Slice(stations, func(i, j int) bool { return stations[i].ID < stations[j].ID })

	return stations, nil
}

func (r *Memory) Update(_ context.Context, stationEntity entities.Station) (*entities.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.stations[stationEntity.ID]
	if !ok {
		return nil, station.ErrStationNotFound
	}

	// Creation time stays as stored, same as the SQL update.
	stationEntity.CreatedAt = stored.CreatedAt
	stationEntity.UpdatedAt = time.Now().UTC()
	stationEntity.Amenities = cloneAmenities(stationEntity.Amenities)
	r.stations[stationEntity.ID] = stationEntity

	out := stationEntity
	out.Amenities = cloneAmenities(stationEntity.Amenities)
	return &out, nil
}

func (r *Memory) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stations[id]; !ok {
		return station.ErrStationNotFound
	}

	delete(r.stations, id)
	return nil
}

func (r *Memory) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.stations)), nil
}

func hasAnyPrefix(geohash string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(geohash, prefix) {
			return true
		}
	}
	return false
}

func cloneAmenities(amenities []string) []string {
	return append([]string{}, amenities...)
}
