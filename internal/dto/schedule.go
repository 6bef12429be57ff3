package dto

import (
	"time"

	"truckboard/internal/entities"
)

type ScheduleEntry struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	StartAt    time.Time  `json:"start_at"`
	EndAt      *time.Time `json:"end_at,omitempty"`
	DeliveryID *int64     `json:"delivery_id,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type ScheduleEntryCreate struct {
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	StartAt    time.Time  `json:"start_at"`
	EndAt      *time.Time `json:"end_at"`
	DeliveryID *int64     `json:"delivery_id"`
	Notes      string     `json:"notes"`
}

type ScheduleEntryUpdate struct {
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	StartAt    time.Time  `json:"start_at"`
	EndAt      *time.Time `json:"end_at"`
	DeliveryID *int64     `json:"delivery_id"`
	Notes      string     `json:"notes"`
}

func NewScheduleEntry(entity entities.ScheduleEntry) ScheduleEntry {
	entry := ScheduleEntry{
		ID:         entity.ID,
		UserID:     entity.UserID,
		Title:      entity.Title,
		Type:       entity.Type.String(),
		StartAt:    entity.StartAt,
		DeliveryID: entity.DeliveryID,
		Notes:      entity.Notes,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
	// An open-ended entry has a zero EndAt and is rendered without the field.
	if !entity.EndAt.IsZero() {
		endAt := entity.EndAt
		entry.EndAt = &endAt
	}
	return entry
}

func NewScheduleEntries(entries []entities.ScheduleEntry) []ScheduleEntry {
	list := make([]ScheduleEntry, len(entries))
	for i, entry := range entries {
		list[i] = NewScheduleEntry(entry)
	}
	return list
}
