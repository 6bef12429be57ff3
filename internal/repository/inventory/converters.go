package inventory

import (
	"truckboard/internal/entities"
)

func ToDomain(item *InventoryItemDB) *entities.InventoryItem {
	if item == nil {
		return nil
	}

	return &entities.InventoryItem{
		ID:          item.ID,
		UserID:      item.UserID,
		Name:        item.Name,
		Category:    item.Category,
		Quantity:    item.Quantity,
		WeightKG:    item.WeightKG,
		Destination: item.Destination,
		Location:    item.Location,
		Deadline:    item.Deadline,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func ToDomainList(items []InventoryItemDB) []entities.InventoryItem {
	domainItems := make([]entities.InventoryItem, 0, len(items))
	for i := range items {
		domainItems = append(domainItems, *ToDomain(&items[i]))
	}
	return domainItems
}
