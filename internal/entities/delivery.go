package entities

import "time"

type Delivery struct {
	ID          int64
	UserID      int64
	Destination string
	Address     string
	ScheduledAt time.Time
	Status      DeliveryStatusType
	ItemIDs     []int64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryDelayed   DeliveryStatusType = "delayed"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

const DefaultDeliveryStatus = DeliveryPending

func (t DeliveryStatusType) String() string {
	return string(t)
}

// DeliveryDraft is the writable field set; item IDs are stored as given,
// existence of the referenced items is not checked.
type DeliveryDraft struct {
	Destination string
	Address     string
	ScheduledAt time.Time
	Status      DeliveryStatusType
	ItemIDs     []int64
	Notes       string
}

type DeliveryFilter struct {
	Status DeliveryStatusType
}
