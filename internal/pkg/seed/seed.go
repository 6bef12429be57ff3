// Package seed loads demo fixtures into an empty store at startup.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"truckboard/internal/entities"
	"truckboard/pkg/logger"
)

type StationService interface {
	CreateStation(ctx context.Context, draft entities.StationDraft) (*entities.Station, error)
	CountStations(ctx context.Context) (int64, error)
}

type stationSeed struct {
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

// Stations populates the station store from a JSON fixture when the
// store is empty. The fixture is demo data, not critical: a missing or
// unreadable file logs a warning and the server starts without it.
func Stations(ctx context.Context, log logger.Logger, service StationService, path string) error {
	seedLog := log.With(
		logger.NewField("component", "seed"),
	)

	count, err := service.CountStations(ctx)
	if err != nil {
		return fmt.Errorf("count stations: %w", err)
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		seedLog.Warn("station seed file is not readable, starting without seed data",
			logger.NewField("path", path),
			logger.NewField("error", err),
		)
		return nil
	}

	var seeds []stationSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		seedLog.Warn("station seed file is not valid JSON, starting without seed data",
			logger.NewField("path", path),
			logger.NewField("error", err),
		)
		return nil
	}

	created := 0
	for _, s := range seeds {
		_, err := service.CreateStation(ctx, entities.StationDraft{
			Name:         s.Name,
			Type:         entities.StationType(s.Type),
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			Address:      s.Address,
			Amenities:    s.Amenities,
			PricePerUnit: s.PricePerUnit,
			Currency:     s.Currency,
			Open24h:      s.Open24h,
		})
		if err != nil {
			seedLog.Warn("skipping invalid station seed",
				logger.NewField("name", s.Name),
				logger.NewField("error", err),
			)
			continue
		}
		created++
	}

	seedLog.Info("seeded stations",
		logger.NewField("count", created),
	)

	return nil
}
