package inventory

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"truckboard/internal/entities"
	"truckboard/internal/service/inventory"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Postgres struct {
	querier Querier
}

func NewPostgres(querier Querier) *Postgres {
	return &Postgres{querier: querier}
}

const createItemQuery = `
INSERT INTO inventory_items (user_id, name, category, quantity, weight_kg, destination, location, deadline)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, user_id, name, category, quantity, weight_kg, destination, location, deadline, created_at, updated_at`

func (r *Postgres) Create(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	var created InventoryItemDB
	err := r.querier.QueryRow(ctx, createItemQuery,
		item.UserID,
		item.Name,
		item.Category,
		item.Quantity,
		item.WeightKG,
		item.Destination,
		item.Location,
		item.Deadline,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Name,
		&created.Category,
		&created.Quantity,
		&created.WeightKG,
		&created.Destination,
		&created.Location,
		&created.Deadline,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

const getItemByIDQuery = `
SELECT id, user_id, name, category, quantity, weight_kg, destination, location, deadline, created_at, updated_at
FROM inventory_items
WHERE id = $1`

func (r *Postgres) GetByID(ctx context.Context, id int64) (*entities.InventoryItem, error) {
	var item InventoryItemDB
	err := r.querier.QueryRow(ctx, getItemByIDQuery, id).Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Category,
		&item.Quantity,
		&item.WeightKG,
		&item.Destination,
		&item.Location,
		&item.Deadline,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected inventory repository get error: %w", err)
	}

	return ToDomain(&item), nil
}

func (r *Postgres) GetAll(ctx context.Context, userID int64, filter entities.InventoryFilter) ([]entities.InventoryItem, error) {
	builder := qb.
		Select("id", "user_id", "name", "category", "quantity", "weight_kg", "destination", "location", "deadline", "created_at", "updated_at").
		From("inventory_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository query build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository get all error: %w", err)
	}
	defer rows.Close()

	var items []InventoryItemDB
	for rows.Next() {
		var item InventoryItemDB
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Name,
			&item.Category,
			&item.Quantity,
			&item.WeightKG,
			&item.Destination,
			&item.Location,
			&item.Deadline,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected inventory repository scan error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected inventory repository rows error: %w", err)
	}

	return ToDomainList(items), nil
}

const updateItemQuery = `
UPDATE inventory_items
SET name = $2, category = $3, quantity = $4, weight_kg = $5, destination = $6, location = $7, deadline = $8, updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, name, category, quantity, weight_kg, destination, location, deadline, created_at, updated_at`

func (r *Postgres) Update(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	var updated InventoryItemDB
	err := r.querier.QueryRow(ctx, updateItemQuery,
		item.ID,
		item.Name,
		item.Category,
		item.Quantity,
		item.WeightKG,
		item.Destination,
		item.Location,
		item.Deadline,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Name,
		&updated.Category,
		&updated.Quantity,
		&updated.WeightKG,
		&updated.Destination,
		&updated.Location,
		&updated.Deadline,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected inventory repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

const deleteItemQuery = `
DELETE FROM inventory_items
WHERE id = $1`

func (r *Postgres) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, deleteItemQuery, id)
	if err != nil {
		return fmt.Errorf("unexpected inventory repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return inventory.ErrItemNotFound
	}

	return nil
}
