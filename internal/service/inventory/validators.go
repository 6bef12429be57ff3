package inventory

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidQuantity(quantity int64) bool {
	return quantity >= 0
}

func isValidWeight(weightKG float64) bool {
	return weightKG >= 0
}
