package inventory

import "time"

type InventoryItemDB struct {
	ID          int64
	UserID      int64
	Name        string
	Category    string
	Quantity    int64
	WeightKG    float64
	Destination string
	Location    string
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
