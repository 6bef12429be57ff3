package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"truckboard/internal/entities"
	"truckboard/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Postgres struct {
	querier Querier
}

func NewPostgres(querier Querier) *Postgres {
	return &Postgres{querier: querier}
}

func (r *Postgres) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	deliveryModel := FromDomain(&deliveryEntity)

	query := `
		INSERT INTO deliveries (user_id, destination, address, scheduled_at, status, item_ids, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, destination, address, scheduled_at, status, item_ids, notes, created_at, updated_at
	`

	var created DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModel.UserID,
		deliveryModel.Destination,
		deliveryModel.Address,
		deliveryModel.ScheduledAt,
		deliveryModel.Status,
		deliveryModel.ItemIDs,
		deliveryModel.Notes,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Destination,
		&created.Address,
		&created.ScheduledAt,
		&created.Status,
		&created.ItemIDs,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Postgres) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `
		SELECT id, user_id, destination, address, scheduled_at, status, item_ids, notes, created_at, updated_at
		FROM deliveries
		WHERE id = $1
	`

	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&deliveryModel.ID,
		&deliveryModel.UserID,
		&deliveryModel.Destination,
		&deliveryModel.Address,
		&deliveryModel.ScheduledAt,
		&deliveryModel.Status,
		&deliveryModel.ItemIDs,
		&deliveryModel.Notes,
		&deliveryModel.CreatedAt,
		&deliveryModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

// GetByIDs returns the caller's deliveries among ids. Missing or foreign
// ids are skipped, not reported.
func (r *Postgres) GetByIDs(ctx context.Context, userID int64, ids []int64) ([]entities.Delivery, error) {
	query := `
		SELECT id, user_id, destination, address, scheduled_at, status, item_ids, notes, created_at, updated_at
		FROM deliveries
		WHERE user_id = $1 AND id = ANY($2)
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get by ids error: %w", err)
	}
	defer rows.Close()

	return scanDeliveries(rows)
}

func (r *Postgres) GetAll(ctx context.Context, userID int64, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := qb.
		Select("id", "user_id", "destination", "address", "scheduled_at", "status", "item_ids", "notes", "created_at", "updated_at").
		From("deliveries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository query build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get all error: %w", err)
	}
	defer rows.Close()

	return scanDeliveries(rows)
}

func (r *Postgres) Update(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	deliveryModel := FromDomain(&deliveryEntity)

	query := `
		UPDATE deliveries
		SET destination = $2, address = $3, scheduled_at = $4, status = $5, item_ids = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, destination, address, scheduled_at, status, item_ids, notes, created_at, updated_at
	`

	var updated DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModel.ID,
		deliveryModel.Destination,
		deliveryModel.Address,
		deliveryModel.ScheduledAt,
		deliveryModel.Status,
		deliveryModel.ItemIDs,
		deliveryModel.Notes,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Destination,
		&updated.Address,
		&updated.ScheduledAt,
		&updated.Status,
		&updated.ItemIDs,
		&updated.Notes,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

func (r *Postgres) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM deliveries WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}

// MarkOverdue flips open deliveries scheduled before the cutoff to delayed
// and reports how many rows changed.
func (r *Postgres) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE deliveries
		SET status = 'delayed',
		    updated_at = NOW()
		WHERE status IN ('pending', 'in_transit')
		  AND scheduled_at < $1
	`

	result, err := r.querier.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository mark overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanDeliveries(rows pgx.Rows) ([]entities.Delivery, error) {
	var deliveries []DeliveryDB
	for rows.Next() {
		var deliveryModel DeliveryDB
		err := rows.Scan(
			&deliveryModel.ID,
			&deliveryModel.UserID,
			&deliveryModel.Destination,
			&deliveryModel.Address,
			&deliveryModel.ScheduledAt,
			&deliveryModel.Status,
			&deliveryModel.ItemIDs,
			&deliveryModel.Notes,
			&deliveryModel.CreatedAt,
			&deliveryModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		deliveries = append(deliveries, deliveryModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return ToDomainList(deliveries), nil
}
