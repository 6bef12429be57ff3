package entities

import "time"

type ScheduleEntry struct {
	ID         int64
	UserID     int64
	Title      string
	Type       ScheduleEntryType
	StartAt    time.Time
	EndAt      time.Time
	DeliveryID *int64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ScheduleEntryType string

const (
	ScheduleDelivery    ScheduleEntryType = "delivery"
	ScheduleRest        ScheduleEntryType = "rest"
	ScheduleMaintenance ScheduleEntryType = "maintenance"
	ScheduleMeeting     ScheduleEntryType = "meeting"
)

func (t ScheduleEntryType) String() string {
	return string(t)
}

type ScheduleEntryDraft struct {
	Title      string
	Type       ScheduleEntryType
	StartAt    time.Time
	EndAt      time.Time
	DeliveryID *int64
	Notes      string
}

type ScheduleFilter struct {
	From *time.Time
	To   *time.Time
}
