package station

import "time"

type StationDB struct {
	ID           int64
	Name         string
	Type         string
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
