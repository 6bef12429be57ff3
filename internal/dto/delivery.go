package dto

import (
	"time"

	"truckboard/internal/entities"
)

type Delivery struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Destination string    `json:"destination"`
	Address     string    `json:"address,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	ItemIDs     []int64   `json:"item_ids"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeliveryCreate struct {
	Destination string    `json:"destination"`
	Address     string    `json:"address"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	ItemIDs     []int64   `json:"item_ids"`
	Notes       string    `json:"notes"`
}

type DeliveryUpdate struct {
	Destination string    `json:"destination"`
	Address     string    `json:"address"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	ItemIDs     []int64   `json:"item_ids"`
	Notes       string    `json:"notes"`
}

func NewDelivery(entity entities.Delivery) Delivery {
	return Delivery{
		ID:          entity.ID,
		UserID:      entity.UserID,
		Destination: entity.Destination,
		Address:     entity.Address,
		ScheduledAt: entity.ScheduledAt,
		Status:      entity.Status.String(),
		ItemIDs:     entity.ItemIDs,
		Notes:       entity.Notes,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func NewDeliveries(deliveries []entities.Delivery) []Delivery {
	list := make([]Delivery, len(deliveries))
	for i, delivery := range deliveries {
		list[i] = NewDelivery(delivery)
	}
	return list
}
