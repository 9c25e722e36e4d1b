package models

import "time"

// EventType is the closed set of academic calendar event kinds.
type EventType string

const (
	EventExam     EventType = "exam"
	EventHoliday  EventType = "holiday"
	EventGeneric  EventType = "event"
	EventDeadline EventType = "deadline"
	EventOther    EventType = "other"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventExam, EventHoliday, EventGeneric, EventDeadline, EventOther:
		return true
	}
	return false
}

// CalendarEvent is a single entry of the academic calendar.
type CalendarEvent struct {
	EventID     int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
	EventType   EventType `json:"event_type"`
	CreatedBy   int64     `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CalendarFilter narrows a calendar listing to a single month. Both fields
// must be set for the filter to apply.
type CalendarFilter struct {
	Month int
	Year  int
}

// TableName returns the name of the database table
// associated with the CalendarEvent model.
func (e CalendarEvent) TableName() string {
	return "academic_calendar"
}
