package schedule

import (
	"context"
	"sort"
	"sync"
	"time"

	"truckboard/internal/entities"
	"truckboard/internal/service/schedule"
)

// Memory keeps schedule entries in process memory. It is the default
// storage driver and mirrors the sentinel behavior of the postgres driver.
type Memory struct {
	mu      sync.RWMutex
	entries map[int64]entities.ScheduleEntry
	nextID  int64
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[int64]entities.ScheduleEntry)}
}

func (r *Memory) Create(_ context.Context, entry entities.ScheduleEntry) (*entities.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextID++
	entry.ID = r.nextID
	entry.DeliveryID = cloneDeliveryID(entry.DeliveryID)
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries[entry.ID] = entry

	out := entry
	out.DeliveryID = cloneDeliveryID(entry.DeliveryID)
	return &out, nil
}

func (r *Memory) GetByID(_ context.Context, id int64) (*entities.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, schedule.ErrEntryNotFound
	}

	out := entry
	out.DeliveryID = cloneDeliveryID(entry.DeliveryID)
	return &out, nil
}

func (r *Memory) GetAll(_ context.Context, userID int64, filter entities.ScheduleFilter) ([]entities.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]entities.ScheduleEntry, 0)
	for _, entry := range r.entries {
		if entry.UserID != userID {
			continue
		}
		if filter.From != nil && entry.StartAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !entry.StartAt.Before(*filter.To) {
			continue
		}
		entry.DeliveryID = cloneDeliveryID(entry.DeliveryID)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].StartAt.Equal(entries[j].StartAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].StartAt.Before(entries[j].StartAt)
	})

	return entries, nil
}

func (r *Memory) Update(_ context.Context, entry entities.ScheduleEntry) (*entities.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entries[entry.ID]
	if !ok {
		return nil, schedule.ErrEntryNotFound
	}

	// Identity and creation time stay as stored, same as the SQL update.
	entry.UserID = stored.UserID
	entry.CreatedAt = stored.CreatedAt
	entry.UpdatedAt = time.Now().UTC()
	entry.DeliveryID = cloneDeliveryID(entry.DeliveryID)
	r.entries[entry.ID] = entry

	out := entry
	out.DeliveryID = cloneDeliveryID(entry.DeliveryID)
	return &out, nil
}

func (r *Memory) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return schedule.ErrEntryNotFound
	}

	delete(r.entries, id)
	return nil
}

func cloneDeliveryID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	clone := *id
	return &clone
}
