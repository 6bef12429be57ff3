package inventory

import (
	"context"
	"fmt"

	"truckboard/internal/entities"
)

type Inventory struct {
	repository Repository
}

func New(repository Repository) *Inventory {
	return &Inventory{
		repository: repository,
	}
}

func (s *Inventory) CreateItem(ctx context.Context, userID int64, draft entities.InventoryItemDraft) (*entities.InventoryItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	item, err := s.repository.Create(ctx, newItem(userID, draft))
	if err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}

	return item, nil
}

func (s *Inventory) GetItem(ctx context.Context, userID, id int64) (*entities.InventoryItem, error) {
	item, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	if item.UserID != userID {
		return nil, ErrNotOwner
	}

	return item, nil
}

func (s *Inventory) GetItems(ctx context.Context, userID int64, filter entities.InventoryFilter) ([]entities.InventoryItem, error) {
	items, err := s.repository.GetAll(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("get inventory items: %w", err)
	}

	return items, nil
}

// UpdateItem replaces the whole writable field set of an owned item.
func (s *Inventory) UpdateItem(ctx context.Context, userID, id int64, draft entities.InventoryItemDraft) (*entities.InventoryItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	if current.UserID != userID {
		return nil, ErrNotOwner
	}

	replacement := newItem(userID, draft)
	replacement.ID = current.ID
	replacement.CreatedAt = current.CreatedAt

	item, err := s.repository.Update(ctx, replacement)
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}

	return item, nil
}

func (s *Inventory) DeleteItem(ctx context.Context, userID, id int64) error {
	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get inventory item: %w", err)
	}
	if current.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}

	return nil
}

func validateDraft(draft entities.InventoryItemDraft) error {
	if !isValidName(draft.Name) {
		return ErrMissingRequiredFields
	}
	if !isValidQuantity(draft.Quantity) {
		return ErrInvalidQuantity
	}
	if !isValidWeight(draft.WeightKG) {
		return ErrInvalidWeight
	}
	return nil
}

func newItem(userID int64, draft entities.InventoryItemDraft) entities.InventoryItem {
	return entities.InventoryItem{
		UserID:      userID,
		Name:        draft.Name,
		Category:    draft.Category,
		Quantity:    draft.Quantity,
		WeightKG:    draft.WeightKG,
		Destination: draft.Destination,
		Location:    draft.Location,
		Deadline:    draft.Deadline,
	}
}
