package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"truckboard/internal/entities"
)

type Auth struct {
	repository Repository
}

func New(repository Repository) *Auth {
	return &Auth{
		repository: repository,
	}
}

func (s *Auth) Register(ctx context.Context, draft entities.UserDraft) (*entities.User, error) {
	if draft.Username == "" || draft.Password == "" {
		return nil, ErrMissingRequiredFields
	}

	if !isValidUsername(draft.Username) {
		return nil, ErrInvalidUsername
	}
	if !isValidPassword(draft.Password) {
		return nil, ErrInvalidPassword
	}
	if !isValidName(draft.Name) {
		return nil, ErrMissingRequiredFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repository.Create(ctx, entities.User{
		Username:      draft.Username,
		PasswordHash:  string(hash),
		Name:          draft.Name,
		Email:         draft.Email,
		Phone:         draft.Phone,
		LicenseNumber: draft.LicenseNumber,
		TruckPlate:    draft.TruckPlate,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *Auth) Login(ctx context.Context, credentials entities.Credentials) (*entities.User, error) {
	if credentials.Username == "" || credentials.Password == "" {
		return nil, ErrMissingRequiredFields
	}

	user, err := s.repository.GetByUsername(ctx, credentials.Username)
	if err != nil {
		// do not reveal whether the username exists
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Auth) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
