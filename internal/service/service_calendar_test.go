package service

import (
	"context"
	"testing"
	"time"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.CalendarRepository
// ─────────────────────────────────────────────

type mockCalendarRepository struct {
	createFn func(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error)
	listFn   func(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
}

func (m *mockCalendarRepository) Create(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	event.EventID = 1
	return event, nil
}

func (m *mockCalendarRepository) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func validCalendarEvent() models.CalendarEvent {
	return models.CalendarEvent{
		Title:     "Midterm Exams",
		EventDate: time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC),
		EventType: models.EventExam,
		CreatedBy: 42,
	}
}

// ─────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────

func TestCalendarService_Add_Success(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepository{}, logger.Nop())

	created, err := svc.Add(context.Background(), models.RoleAdmin, validCalendarEvent())

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.EventID)
}

func TestCalendarService_Add_AdminOnly(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepository{}, logger.Nop())

	_, err := svc.Add(context.Background(), models.RoleStudent, validCalendarEvent())
	require.ErrorIs(t, err, ErrAdminRequired)

	_, err = svc.Add(context.Background(), models.RoleFaculty, validCalendarEvent())
	require.ErrorIs(t, err, ErrAdminRequired)
}

func TestCalendarService_Add_DefaultsEventType(t *testing.T) {
	repo := &mockCalendarRepository{
		createFn: func(_ context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
			assert.Equal(t, models.EventOther, event.EventType)
			return event, nil
		},
	}
	svc := NewCalendarService(repo, logger.Nop())

	event := validCalendarEvent()
	event.EventType = ""

	_, err := svc.Add(context.Background(), models.RoleAdmin, event)

	require.NoError(t, err)
}

func TestCalendarService_Add_UnknownEventType(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepository{}, logger.Nop())

	event := validCalendarEvent()
	event.EventType = "party"

	_, err := svc.Add(context.Background(), models.RoleAdmin, event)

	require.ErrorIs(t, err, ErrInvalidEventType)
}

func TestCalendarService_Add_MissingFields(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepository{}, logger.Nop())

	event := validCalendarEvent()
	event.Title = ""
	_, err := svc.Add(context.Background(), models.RoleAdmin, event)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	event = validCalendarEvent()
	event.EventDate = time.Time{}
	_, err = svc.Add(context.Background(), models.RoleAdmin, event)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestCalendarService_List_PassesFilterThrough(t *testing.T) {
	repo := &mockCalendarRepository{
		listFn: func(_ context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
			assert.Equal(t, 11, filter.Month)
			assert.Equal(t, 2026, filter.Year)
			return []models.CalendarEvent{{EventID: 1}}, nil
		},
	}
	svc := NewCalendarService(repo, logger.Nop())

	events, err := svc.List(context.Background(), models.CalendarFilter{Month: 11, Year: 2026})

	require.NoError(t, err)
	assert.Len(t, events, 1)
}
