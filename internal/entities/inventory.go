package entities

import (
	"time"
)

type InventoryItem struct {
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

// InventoryItemDraft is the writable field set; updates replace it wholesale.
type InventoryItemDraft struct {
	Name        string
	Category    string
	Quantity    int64
	WeightKG    float64
	Destination string
	Location    string
	Deadline    *time.Time
}

type InventoryFilter struct {
	Category string
}
