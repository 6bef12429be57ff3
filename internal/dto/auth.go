package dto

import (
	"time"

	"truckboard/internal/entities"
)

// User is the sanitized account view. The password hash never leaves
// the service layer.
type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	TruckPlate    string    `json:"truck_plate,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	TruckPlate    string `json:"truck_plate"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewUser(entity entities.User) User {
	return User{
		ID:            entity.ID,
		Username:      entity.Username,
		Name:          entity.Name,
		Email:         entity.Email,
		Phone:         entity.Phone,
		LicenseNumber: entity.LicenseNumber,
		TruckPlate:    entity.TruckPlate,
		CreatedAt:     entity.CreatedAt,
	}
}
