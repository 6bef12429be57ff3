package schedule

import (
	"time"

	"truckboard/internal/entities"
)

func ToDomain(e *ScheduleEntryDB) *entities.ScheduleEntry {
	if e == nil {
		return nil
	}

	var endAt time.Time
	if e.EndAt != nil {
		endAt = *e.EndAt
	}

	return &entities.ScheduleEntry{
		ID:         e.ID,
		UserID:     e.UserID,
		Title:      e.Title,
		Type:       entities.ScheduleEntryType(e.Type),
		StartAt:    e.StartAt,
		EndAt:      endAt,
		DeliveryID: e.DeliveryID,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToDomainList(entries []ScheduleEntryDB) []entities.ScheduleEntry {
	domainEntries := make([]entities.ScheduleEntry, 0, len(entries))
	for i := range entries {
		domainEntries = append(domainEntries, *ToDomain(&entries[i]))
	}
	return domainEntries
}

func FromDomain(e *entities.ScheduleEntry) *ScheduleEntryDB {
	if e == nil {
		return nil
	}

	// An open-ended entry has a zero EndAt, stored as NULL.
	var endAt *time.Time
	if !e.EndAt.IsZero() {
		end := e.EndAt
		endAt = &end
	}

	return &ScheduleEntryDB{
		ID:         e.ID,
		UserID:     e.UserID,
		Title:      e.Title,
		Type:       e.Type.String(),
		StartAt:    e.StartAt,
		EndAt:      endAt,
		DeliveryID: e.DeliveryID,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
