package entities

import (
	"time"
)

type User struct {
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

// UserDraft carries the writable field set for registration.
// Password is plaintext here and hashed by the auth service.
type UserDraft struct {
	Username      string
	Password      string
	Name          string
	Email         string
	Phone         string
	LicenseNumber string
	TruckPlate    string
}

type Credentials struct {
	Username string
	Password string
}
