package dto

import (
	"time"

	"truckboard/internal/entities"
)

type InventoryItem struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Name        string     `json:"name"`
	Category    string     `json:"category,omitempty"`
	Quantity    int64      `json:"quantity"`
	WeightKG    float64    `json:"weight_kg"`
	Destination string     `json:"destination,omitempty"`
	Location    string     `json:"location,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type InventoryItemCreate struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Quantity    int64      `json:"quantity"`
	WeightKG    float64    `json:"weight_kg"`
	Destination string     `json:"destination"`
	Location    string     `json:"location"`
	Deadline    *time.Time `json:"deadline"`
}

// InventoryItemUpdate carries the same field set as create; PUT replaces
// the record wholesale.
type InventoryItemUpdate struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Quantity    int64      `json:"quantity"`
	WeightKG    float64    `json:"weight_kg"`
	Destination string     `json:"destination"`
	Location    string     `json:"location"`
	Deadline    *time.Time `json:"deadline"`
}

func NewInventoryItem(entity entities.InventoryItem) InventoryItem {
	return InventoryItem{
		ID:          entity.ID,
		UserID:      entity.UserID,
		Name:        entity.Name,
		Category:    entity.Category,
		Quantity:    entity.Quantity,
		WeightKG:    entity.WeightKG,
		Destination: entity.Destination,
		Location:    entity.Location,
		Deadline:    entity.Deadline,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func NewInventoryItems(items []entities.InventoryItem) []InventoryItem {
	list := make([]InventoryItem, len(items))
	for i, item := range items {
		list[i] = NewInventoryItem(item)
	}
	return list
}
