package advisor

import (
	"context"
	"fmt"
	"time"

	"truckboard/internal/entities"
)

// Advisor collects the caller's day and asks the collaborator for a
// short list of driving tips.
type Advisor struct {
	deliveries  DeliveryReader
	schedule    ScheduleReader
	recommender Recommender
}

func New(deliveries DeliveryReader, schedule ScheduleReader, recommender Recommender) *Advisor {
	return &Advisor{
		deliveries:  deliveries,
		schedule:    schedule,
		recommender: recommender,
	}
}

func (s *Advisor) GetRecommendations(ctx context.Context, userID int64) ([]string, error) {
	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	deliveries, err := s.deliveries.GetAll(ctx, userID, entities.DeliveryFilter{})
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}

	todays := make([]entities.Delivery, 0, len(deliveries))
	for _, delivery := range deliveries {
		if delivery.ScheduledAt.Before(from) || !delivery.ScheduledAt.Before(to) {
			continue
		}
		todays = append(todays, delivery)
	}

	entries, err := s.schedule.GetAll(ctx, userID, entities.ScheduleFilter{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("get schedule entries: %w", err)
	}

	recommendations, err := s.recommender.Recommendations(ctx, todays, entries)
	if err != nil {
		return nil, fmt.Errorf("get recommendations: %w", err)
	}

	return recommendations, nil
}
