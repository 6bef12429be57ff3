package schedule

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"truckboard/internal/entities"
	"truckboard/internal/service/schedule"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Postgres struct {
	querier Querier
}

func NewPostgres(querier Querier) *Postgres {
	return &Postgres{querier: querier}
}

const createEntryQuery = `
INSERT INTO schedule_entries (user_id, title, entry_type, start_at, end_at, delivery_id, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, title, entry_type, start_at, end_at, delivery_id, notes, created_at, updated_at`

func (r *Postgres) Create(ctx context.Context, entry entities.ScheduleEntry) (*entities.ScheduleEntry, error) {
	entryModel := FromDomain(&entry)

	var created ScheduleEntryDB
	err := r.querier.QueryRow(ctx, createEntryQuery,
		entryModel.UserID,
		entryModel.Title,
		entryModel.Type,
		entryModel.StartAt,
		entryModel.EndAt,
		entryModel.DeliveryID,
		entryModel.Notes,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Title,
		&created.Type,
		&created.StartAt,
		&created.EndAt,
		&created.DeliveryID,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

const getEntryByIDQuery = `
SELECT id, user_id, title, entry_type, start_at, end_at, delivery_id, notes, created_at, updated_at
FROM schedule_entries
WHERE id = $1`

func (r *Postgres) GetByID(ctx context.Context, id int64) (*entities.ScheduleEntry, error) {
	var entryModel ScheduleEntryDB
	err := r.querier.QueryRow(ctx, getEntryByIDQuery, id).Scan(
		&entryModel.ID,
		&entryModel.UserID,
		&entryModel.Title,
		&entryModel.Type,
		&entryModel.StartAt,
		&entryModel.EndAt,
		&entryModel.DeliveryID,
		&entryModel.Notes,
		&entryModel.CreatedAt,
		&entryModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get error: %w", err)
	}

	return ToDomain(&entryModel), nil
}

func (r *Postgres) GetAll(ctx context.Context, userID int64, filter entities.ScheduleFilter) ([]entities.ScheduleEntry, error) {
	builder := qb.
		Select("id", "user_id", "title", "entry_type", "start_at", "end_at", "delivery_id", "notes", "created_at", "updated_at").
		From("schedule_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("start_at", "id")

	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"start_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"start_at": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository query build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository get all error: %w", err)
	}
	defer rows.Close()

	var entries []ScheduleEntryDB
	for rows.Next() {
		var entryModel ScheduleEntryDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.UserID,
			&entryModel.Title,
			&entryModel.Type,
			&entryModel.StartAt,
			&entryModel.EndAt,
			&entryModel.DeliveryID,
			&entryModel.Notes,
			&entryModel.CreatedAt,
			&entryModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository scan error: %w", err)
		}
		entries = append(entries, entryModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository rows error: %w", err)
	}

	return ToDomainList(entries), nil
}

const updateEntryQuery = `
UPDATE schedule_entries
SET title = $2, entry_type = $3, start_at = $4, end_at = $5, delivery_id = $6, notes = $7, updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, title, entry_type, start_at, end_at, delivery_id, notes, created_at, updated_at`

func (r *Postgres) Update(ctx context.Context, entry entities.ScheduleEntry) (*entities.ScheduleEntry, error) {
	entryModel := FromDomain(&entry)

	var updated ScheduleEntryDB
	err := r.querier.QueryRow(ctx, updateEntryQuery,
		entryModel.ID,
		entryModel.Title,
		entryModel.Type,
		entryModel.StartAt,
		entryModel.EndAt,
		entryModel.DeliveryID,
		entryModel.Notes,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Title,
		&updated.Type,
		&updated.StartAt,
		&updated.EndAt,
		&updated.DeliveryID,
		&updated.Notes,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

const deleteEntryQuery = `
DELETE FROM schedule_entries
WHERE id = $1`

func (r *Postgres) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, deleteEntryQuery, id)
	if err != nil {
		return fmt.Errorf("unexpected schedule repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}
