package auth

import "strings"

const (
	minUsernameLen = 3
	maxUsernameLen = 32

	minPasswordLen = 8
	// bcrypt rejects inputs longer than 72 bytes
	maxPasswordLen = 72
)

func isValidUsername(username string) bool {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return false
	}

	for _, char := range username {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= 'A' && char <= 'Z':
		case char >= '0' && char <= '9':
		case char == '_' || char == '.' || char == '-':
		default:
			return false
		}
	}
	return true
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLen && len(password) <= maxPasswordLen
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
