package delivery_overdue

import (
	"context"
	"time"

	"truckboard/pkg/logger"
)

type Service interface {
	MarkOverdueDeliveries(ctx context.Context, grace time.Duration) (int64, error)
}

// DeliveryOverdue periodically flags deliveries whose scheduled date plus
// a grace period has passed without the delivery completing.
type DeliveryOverdue struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	grace    time.Duration
}

func NewDeliveryOverdue(log logger.Logger, service Service, interval, grace time.Duration) *DeliveryOverdue {
	return &DeliveryOverdue{
		log:      log,
		service:  service,
		interval: interval,
		grace:    grace,
	}
}

func (d *DeliveryOverdue) TTL() time.Duration {
	return d.interval
}

func (d *DeliveryOverdue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	flagged, err := d.service.MarkOverdueDeliveries(ctxWithTimeout, d.grace)

	if flagged > 0 {
		d.log.With(
			logger.NewField("overdue_deliveries", flagged),
		).Info("delivery overdue sweep")
	}

	return err
}

func (d *DeliveryOverdue) Info() string {
	return "delivery overdue sweep"
}
