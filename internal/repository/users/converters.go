package users

import (
	"truckboard/internal/entities"
)

func ToDomain(user *UserDB) *entities.User {
	if user == nil {
		return nil
	}

	return &entities.User{
		ID:            user.ID,
		Username:      user.Username,
		PasswordHash:  user.PasswordHash,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		LicenseNumber: user.LicenseNumber,
		TruckPlate:    user.TruckPlate,
		CreatedAt:     user.CreatedAt,
	}
}
