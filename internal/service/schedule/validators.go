package schedule

import (
	"strings"

	"truckboard/internal/entities"
)

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

func isValidType(entryType entities.ScheduleEntryType) bool {
	switch entryType {
	case entities.ScheduleDelivery,
		entities.ScheduleRest,
		entities.ScheduleMaintenance,
		entities.ScheduleMeeting:
		return true
	default:
		return false
	}
}
