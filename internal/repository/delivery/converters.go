package delivery

import "truckboard/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	itemIDs := d.ItemIDs
	if itemIDs == nil {
		itemIDs = []int64{}
	}

	return &entities.Delivery{
		ID:          d.ID,
		UserID:      d.UserID,
		Destination: d.Destination,
		Address:     d.Address,
		ScheduledAt: d.ScheduledAt,
		Status:      entities.DeliveryStatusType(d.Status),
		ItemIDs:     itemIDs,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToDomainList(deliveries []DeliveryDB) []entities.Delivery {
	domainDeliveries := make([]entities.Delivery, 0, len(deliveries))
	for i := range deliveries {
		domainDeliveries = append(domainDeliveries, *ToDomain(&deliveries[i]))
	}
	return domainDeliveries
}

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}

	// The item_ids column is NOT NULL, a nil slice would encode as NULL.
	itemIDs := d.ItemIDs
	if itemIDs == nil {
		itemIDs = []int64{}
	}

	return &DeliveryDB{
		ID:          d.ID,
		UserID:      d.UserID,
		Destination: d.Destination,
		Address:     d.Address,
		ScheduledAt: d.ScheduledAt,
		Status:      d.Status.String(),
		ItemIDs:     itemIDs,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
