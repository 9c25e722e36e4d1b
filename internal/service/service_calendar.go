package service

import (
	"context"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/models"
)

// calendarService is the concrete implementation of [CalendarService].
type calendarService struct {
	calendarRepository store.CalendarRepository

	logger *logger.Logger
}

// NewCalendarService constructs a [CalendarService].
func NewCalendarService(calendarRepository store.CalendarRepository, logger *logger.Logger) CalendarService {
	return &calendarService{
		calendarRepository: calendarRepository,
		logger:             logger,
	}
}

// List returns calendar events, optionally narrowed to a single month.
func (s *calendarService) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	return s.calendarRepository.List(ctx, filter)
}

// Add creates a calendar event. Admin only; the event type defaults to
// "other" when empty and must otherwise be a known value.
func (s *calendarService) Add(ctx context.Context, role models.Role, event models.CalendarEvent) (models.CalendarEvent, error) {
	if role != models.RoleAdmin {
		return models.CalendarEvent{}, ErrAdminRequired
	}

	if event.Title == "" || event.EventDate.IsZero() {
		return models.CalendarEvent{}, ErrInvalidDataProvided
	}

	if event.EventType == "" {
		event.EventType = models.EventOther
	}
	if !event.EventType.Valid() {
		return models.CalendarEvent{}, ErrInvalidEventType
	}

	return s.calendarRepository.Create(ctx, event)
}
