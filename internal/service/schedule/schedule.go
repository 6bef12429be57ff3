package schedule

import (
	"context"
	"fmt"

	"truckboard/internal/entities"
)

type Schedule struct {
	repository Repository
}

func New(repository Repository) *Schedule {
	return &Schedule{
		repository: repository,
	}
}

func (s *Schedule) CreateEntry(ctx context.Context, userID int64, draft entities.ScheduleEntryDraft) (*entities.ScheduleEntry, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	entry, err := s.repository.Create(ctx, newEntry(userID, draft))
	if err != nil {
		return nil, fmt.Errorf("create schedule entry: %w", err)
	}

	return entry, nil
}

func (s *Schedule) GetEntry(ctx context.Context, userID, id int64) (*entities.ScheduleEntry, error) {
	entry, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule entry: %w", err)
	}
	if entry.UserID != userID {
		return nil, ErrNotOwner
	}

	return entry, nil
}

func (s *Schedule) GetEntries(ctx context.Context, userID int64, filter entities.ScheduleFilter) ([]entities.ScheduleEntry, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, ErrInvalidTimeRange
	}

	entries, err := s.repository.GetAll(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("get schedule entries: %w", err)
	}

	return entries, nil
}

// UpdateEntry replaces the whole writable field set of an owned entry.
func (s *Schedule) UpdateEntry(ctx context.Context, userID, id int64, draft entities.ScheduleEntryDraft) (*entities.ScheduleEntry, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule entry: %w", err)
	}
	if current.UserID != userID {
		return nil, ErrNotOwner
	}

	replacement := newEntry(userID, draft)
	replacement.ID = current.ID
	replacement.CreatedAt = current.CreatedAt

	entry, err := s.repository.Update(ctx, replacement)
	if err != nil {
		return nil, fmt.Errorf("update schedule entry: %w", err)
	}

	return entry, nil
}

func (s *Schedule) DeleteEntry(ctx context.Context, userID, id int64) error {
	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get schedule entry: %w", err)
	}
	if current.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete schedule entry: %w", err)
	}

	return nil
}

func validateDraft(draft entities.ScheduleEntryDraft) error {
	if !isValidTitle(draft.Title) {
		return ErrMissingRequiredFields
	}
	if !isValidType(draft.Type) {
		return ErrInvalidType
	}
	if draft.StartAt.IsZero() {
		return ErrInvalidTimeRange
	}
	if !draft.EndAt.IsZero() && !draft.EndAt.After(draft.StartAt) {
		return ErrInvalidTimeRange
	}
	return nil
}

func newEntry(userID int64, draft entities.ScheduleEntryDraft) entities.ScheduleEntry {
	return entities.ScheduleEntry{
		UserID:     userID,
		Title:      draft.Title,
		Type:       draft.Type,
		StartAt:    draft.StartAt,
		EndAt:      draft.EndAt,
		DeliveryID: draft.DeliveryID,
		Notes:      draft.Notes,
	}
}
