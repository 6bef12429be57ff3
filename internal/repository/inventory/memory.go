package inventory

import (
	"context"
	"sort"
	"sync"
	"time"

	"truckboard/internal/entities"
	"truckboard/internal/service/inventory"
)

// Memory keeps inventory items in process memory. It is the default
// storage driver and mirrors the sentinel behavior of the postgres driver.
type Memory struct {
	mu     sync.RWMutex
	items  map[int64]entities.InventoryItem
	nextID int64
}

func NewMemory() *Memory {
	return &Memory{items: make(map[int64]entities.InventoryItem)}
}

func (r *Memory) Create(_ context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextID++
	item.ID = r.nextID
	item.Deadline = cloneDeadline(item.Deadline)
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = item

	out := item
	out.Deadline = cloneDeadline(item.Deadline)
	return &out, nil
}

func (r *Memory) GetByID(_ context.Context, id int64) (*entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, inventory.ErrItemNotFound
	}

	out := item
	out.Deadline = cloneDeadline(item.Deadline)
	return &out, nil
}

func (r *Memory) GetAll(_ context.Context, userID int64, filter entities.InventoryFilter) ([]entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]entities.InventoryItem, 0)
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		item.Deadline = cloneDeadline(item.Deadline)
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (r *Memory) Update(_ context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ID]
	if !ok {
		return nil, inventory.ErrItemNotFound
	}

	// Identity and creation time stay as stored, same as the SQL update.
	item.UserID = stored.UserID
	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	item.Deadline = cloneDeadline(item.Deadline)
	r.items[item.ID] = item

	out := item
	out.Deadline = cloneDeadline(item.Deadline)
	return &out, nil
}

func (r *Memory) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return inventory.ErrItemNotFound
	}

	delete(r.items, id)
	return nil
}

func cloneDeadline(deadline *time.Time) *time.Time {
	if deadline == nil {
		return nil
	}
	clone := *deadline
	return &clone
}
