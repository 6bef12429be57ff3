package users

import "time"

type UserDB struct {
	ID            int64
	Username      string
	PasswordHash  string
	Name          string
	Email         string
	Phone         string
	LicenseNumber string
	TruckPlate    string
	CreatedAt     time.Time
}
