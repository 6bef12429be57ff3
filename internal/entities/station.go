package entities

import "time"

// Station is a point of interest near a route. Stations are shared,
// not owned by a user.
type Station struct {
	ID           int64
	Name         string
	Type         StationType
	Latitude     float64
	Longitude    float64
	Geohash      string
	Address      string
	Amenities    []string
	PricePerUnit float64
	Currency     string
	Open24h      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type StationType string

const (
	StationFuel StationType = "fuel"
	StationRest StationType = "rest"
	StationEV   StationType = "ev"
)

func (t StationType) String() string {
	return string(t)
}

type StationDraft struct {
	Name         string
	Type         StationType
	Latitude     float64
	Longitude    float64
	Address      string
	Amenities    []string
	PricePerUnit float64
	Currency     string
	Open24h      bool
}

type StationFilter struct {
	Type StationType
}

// NearbyQuery bounds a station search around a point. Type is optional
// and narrows the result before distance ordering.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
	Type      StationType
}

// NearbyStation pairs a station with its great-circle distance from
// the requested point.
type NearbyStation struct {
	Station
	DistanceKM float64
}
