package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"truckboard/internal/entities"
	"truckboard/internal/repository"
	"truckboard/internal/service/auth"
)

type Postgres struct {
	querier Querier
}

func NewPostgres(querier Querier) *Postgres {
	return &Postgres{querier: querier}
}

const createUserQuery = `
INSERT INTO users (username, password_hash, name, email, phone, license_number, truck_plate)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, username, password_hash, name, email, phone, license_number, truck_plate, created_at`

func (r *Postgres) Create(ctx context.Context, user entities.User) (*entities.User, error) {
	var created UserDB
	err := r.querier.QueryRow(ctx, createUserQuery,
		user.Username,
		user.PasswordHash,
		user.Name,
		user.Email,
		user.Phone,
		user.LicenseNumber,
		user.TruckPlate,
	).Scan(
		&created.ID,
		&created.Username,
		&created.PasswordHash,
		&created.Name,
		&created.Email,
		&created.Phone,
		&created.LicenseNumber,
		&created.TruckPlate,
		&created.CreatedAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, auth.ErrUsernameTaken
		}
		return nil, fmt.Errorf("unexpected users repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

const getUserByIDQuery = `
SELECT id, username, password_hash, name, email, phone, license_number, truck_plate, created_at
FROM users
WHERE id = $1`

func (r *Postgres) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	var user UserDB
	err := r.querier.QueryRow(ctx, getUserByIDQuery, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.LicenseNumber,
		&user.TruckPlate,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected users repository get error: %w", err)
	}

	return ToDomain(&user), nil
}

const getUserByUsernameQuery = `
SELECT id, username, password_hash, name, email, phone, license_number, truck_plate, created_at
FROM users
WHERE username = $1`

func (r *Postgres) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user UserDB
	err := r.querier.QueryRow(ctx, getUserByUsernameQuery, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.LicenseNumber,
		&user.TruckPlate,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected users repository get error: %w", err)
	}

	return ToDomain(&user), nil
}
