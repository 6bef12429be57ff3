package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"truckboard/internal/entities"
)

type Delivery struct {
	repository Repository
}

func New(repository Repository) *Delivery {
	return &Delivery{
		repository: repository,
	}
}

func (s *Delivery) CreateDelivery(ctx context.Context, userID int64, draft entities.DeliveryDraft) (*entities.Delivery, error) {
	draft.Status = defaultStatus(draft.Status)
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	delivery, err := s.repository.Create(ctx, newDelivery(userID, draft))
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	return delivery, nil
}

func (s *Delivery) GetDelivery(ctx context.Context, userID, id int64) (*entities.Delivery, error) {
	delivery, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if delivery.UserID != userID {
		return nil, ErrNotOwner
	}

	return delivery, nil
}

func (s *Delivery) GetDeliveries(ctx context.Context, userID int64, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	if filter.Status != "" && !isValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}

	deliveries, err := s.repository.GetAll(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}

	return deliveries, nil
}

// UpdateDelivery replaces the whole writable field set of an owned delivery.
func (s *Delivery) UpdateDelivery(ctx context.Context, userID, id int64, draft entities.DeliveryDraft) (*entities.Delivery, error) {
	draft.Status = defaultStatus(draft.Status)
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if current.UserID != userID {
		return nil, ErrNotOwner
	}

	replacement := newDelivery(userID, draft)
	replacement.ID = current.ID
	replacement.CreatedAt = current.CreatedAt

	delivery, err := s.repository.Update(ctx, replacement)
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", err)
	}

	return delivery, nil
}

func (s *Delivery) DeleteDelivery(ctx context.Context, userID, id int64) error {
	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}
	if current.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}

	return nil
}

// MarkOverdueDeliveries flags pending and in-transit deliveries whose
// scheduled time passed more than grace ago as delayed. Returns how
// many records were flagged.
func (s *Delivery) MarkOverdueDeliveries(ctx context.Context, grace time.Duration) (int64, error) {
	before := time.Now().UTC().Add(-grace)

	flagged, err := s.repository.MarkOverdue(ctx, before)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("mark overdue timed out: %w", err)
		}
		return 0, fmt.Errorf("mark overdue: %w", err)
	}

	return flagged, nil
}

func defaultStatus(status entities.DeliveryStatusType) entities.DeliveryStatusType {
	if status == "" {
		return entities.DefaultDeliveryStatus
	}
	return status
}

func validateDraft(draft entities.DeliveryDraft) error {
	if !isValidDestination(draft.Destination) {
		return ErrMissingRequiredFields
	}
	if draft.ScheduledAt.IsZero() {
		return ErrInvalidSchedule
	}
	if !isValidStatus(draft.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func newDelivery(userID int64, draft entities.DeliveryDraft) entities.Delivery {
	return entities.Delivery{
		UserID:      userID,
		Destination: draft.Destination,
		Address:     draft.Address,
		ScheduledAt: draft.ScheduledAt,
		Status:      draft.Status,
		ItemIDs:     draft.ItemIDs,
		Notes:       draft.Notes,
	}
}
