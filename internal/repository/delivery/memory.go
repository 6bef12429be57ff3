package delivery

import (
	"context"
	"sort"
	"sync"
	"time"

	"truckboard/internal/entities"
	"truckboard/internal/service/delivery"
)

// Memory keeps deliveries in process memory. It is the default storage
// driver and mirrors the sentinel behavior of the postgres driver.
type Memory struct {
	mu         sync.RWMutex
	deliveries map[int64]entities.Delivery
	nextID     int64
}

func NewMemory() *Memory {
	return &Memory{deliveries: make(map[int64]entities.Delivery)}
}

func (r *Memory) Create(_ context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextID++
	deliveryEntity.ID = r.nextID
	deliveryEntity.ItemIDs = cloneItemIDs(deliveryEntity.ItemIDs)
	deliveryEntity.CreatedAt = now
	deliveryEntity.UpdatedAt = now
	r.deliveries[deliveryEntity.ID] = deliveryEntity

	out := deliveryEntity
	out.ItemIDs = cloneItemIDs(deliveryEntity.ItemIDs)
	return &out, nil
}

func (r *Memory) GetByID(_ context.Context, id int64) (*entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deliveryEntity, ok := r.deliveries[id]
	if !ok {
		return nil, delivery.ErrDeliveryNotFound
	}

	out := deliveryEntity
	out.ItemIDs = cloneItemIDs(deliveryEntity.ItemIDs)
	return &out, nil
}

// GetByIDs returns the caller's deliveries among ids. Missing or foreign
// ids are skipped, not reported.
func (r *Memory) GetByIDs(_ context.Context, userID int64, ids []int64) ([]entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	deliveries := make([]entities.Delivery, 0, len(wanted))
	for _, deliveryEntity := range r.deliveries {
		if deliveryEntity.UserID != userID {
			continue
		}
		if _, ok := wanted[deliveryEntity.ID]; !ok {
			continue
		}
		deliveryEntity.ItemIDs = cloneItemIDs(deliveryEntity.ItemIDs)
		deliveries = append(deliveries, deliveryEntity)
	}

	sort.Slice(deliveries, func(i, j int) bool { return deliveries[i].ID < deliveries[j].ID })

	return deliveries, nil
}

func (r *Memory) GetAll(_ context.Context, userID int64, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deliveries := make([]entities.Delivery, 0)
	for _, deliveryEntity := range r.deliveries {
		if deliveryEntity.UserID != userID {
			continue
		}
		if filter.Status != "" && deliveryEntity.Status != filter.Status {
			continue
		}
		deliveryEntity.ItemIDs = cloneItemIDs(deliveryEntity.ItemIDs)
		deliveries = append(deliveries, deliveryEntity)
	}

	sort.Slice(deliveries, func(i, j int) bool { return deliveries[i].ID < deliveries[j].ID })

	return deliveries, nil
}

func (r *Memory) Update(_ context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.deliveries[deliveryEntity.ID]
	if !ok {
		return nil, delivery.ErrDeliveryNotFound
	}

	// Identity and creation time stay as stored, same as the SQL update.
	deliveryEntity.UserID = stored.UserID
	deliveryEntity.CreatedAt = stored.CreatedAt
	deliveryEntity.UpdatedAt = time.Now().UTC()
	deliveryEntity.ItemIDs = cloneItemIDs(deliveryEntity.ItemIDs)
	r.deliveries[deliveryEntity.ID] = deliveryEntity

	out := deliveryEntity
	out.ItemIDs = cloneItemIDs(deliveryEntity.ItemIDs)
	return &out, nil
}

func (r *Memory) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deliveries[id]; !ok {
		return delivery.ErrDeliveryNotFound
	}

	delete(r.deliveries, id)
	return nil
}

// MarkOverdue flips open deliveries scheduled before the cutoff to delayed
// and reports how many entries changed.
func (r *Memory) MarkOverdue(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var marked int64
	now := time.Now().UTC()
	for id, deliveryEntity := range r.deliveries {
		open := deliveryEntity.Status == entities.DeliveryPending || deliveryEntity.Status == entities.DeliveryInTransit
		if !open || !deliveryEntity.ScheduledAt.Before(before) {
			continue
		}
		deliveryEntity.Status = entities.DeliveryDelayed
		deliveryEntity.UpdatedAt = now
		r.deliveries[id] = deliveryEntity
		marked++
	}

	return marked, nil
}

func cloneItemIDs(ids []int64) []int64 {
	return append([]int64{}, ids...)
}
