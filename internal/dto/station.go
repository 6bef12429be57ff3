package dto

import (
	"time"

	"truckboard/internal/entities"
)

type Station struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Geohash      string    `json:"geohash"`
	Address      string    `json:"address,omitempty"`
	Amenities    []string  `json:"amenities"`
	PricePerUnit float64   `json:"price_per_unit"`
	Currency     string    `json:"currency,omitempty"`
	Open24h      bool      `json:"open_24h"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NearbyStation extends Station with the great-circle distance from the
// queried point.
type NearbyStation struct {
	Station
	DistanceKM float64 `json:"distance_km"`
}

type StationCreate struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Address      string   `json:"address"`
	Amenities    []string `json:"amenities"`
	PricePerUnit float64  `json:"price_per_unit"`
	Currency     string   `json:"currency"`
	Open24h      bool     `json:"open_24h"`
}

type StationUpdate struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Address      string   `json:"address"`
	Amenities    []string `json:"amenities"`
	PricePerUnit float64  `json:"price_per_unit"`
	Currency     string   `json:"currency"`
	Open24h      bool     `json:"open_24h"`
}

func NewStation(entity entities.Station) Station {
	return Station{
		ID:           entity.ID,
		Name:         entity.Name,
		Type:         entity.Type.String(),
		Latitude:     entity.Latitude,
		Longitude:    entity.Longitude,
		Geohash:      entity.Geohash,
		Address:      entity.Address,
		Amenities:    entity.Amenities,
		PricePerUnit: entity.PricePerUnit,
		Currency:     entity.Currency,
		Open24h:      entity.Open24h,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func NewStations(stations []entities.Station) []Station {
	list := make([]Station, len(stations))
	for i, station := range stations {
		list[i] = NewStation(station)
	}
	return list
}

func NewNearbyStation(entity entities.NearbyStation) NearbyStation {
	return NearbyStation{
		Station:    NewStation(entity.Station),
		DistanceKM: entity.DistanceKM,
	}
}

func NewNearbyStations(stations []entities.NearbyStation) []NearbyStation {
	list := make([]NearbyStation, len(stations))
	for i, station := range stations {
		list[i] = NewNearbyStation(station)
	}
	return list
}
