package delivery

import "time"

type DeliveryDB struct {
	ID          int64
	UserID      int64
	Destination string
	Address     string
	ScheduledAt time.Time
	Status      string
	ItemIDs     []int64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
