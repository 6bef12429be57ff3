package delivery

import (
	"strings"

	"truckboard/internal/entities"
)

func isValidDestination(destination string) bool {
	return strings.TrimSpace(destination) != ""
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryPending,
		entities.DeliveryInTransit,
		entities.DeliveryDelivered,
		entities.DeliveryDelayed,
		entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}
