package schedule

import "time"

type ScheduleEntryDB struct {
	ID         int64
	UserID     int64
	Title      string
	Type       string
	StartAt    time.Time
	EndAt      *time.Time
	DeliveryID *int64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
