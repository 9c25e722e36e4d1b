package store

import (
	"context"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
)

// calendarRepository is the PostgreSQL-backed implementation of
// [CalendarRepository].
type calendarRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCalendarRepository constructs a [CalendarRepository] backed by the
// provided database connection and logger.
func NewCalendarRepository(db *DB, logger *logger.Logger) CalendarRepository {
	logger.Debug().Msg("creating calendar repository")
	return &calendarRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a calendar event and returns it with server-assigned
// fields (EventID, CreatedAt).
func (r *calendarRepository) Create(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCalendarEvent,
		event.Title, event.Description, event.EventDate, event.EventType, event.CreatedBy)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*calendarRepository.Create").Msg("error inserting calendar event")
		return models.CalendarEvent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&event.EventID, &event.CreatedAt); err != nil {
		log.Err(err).Str("func", "*calendarRepository.Create").Msg("error: scanning error")
		return models.CalendarEvent{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return event, nil
}

// List returns calendar events ordered by event date, optionally narrowed to
// a single month via [buildListCalendarQuery].
func (r *calendarRepository) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCalendarQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*calendarRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*calendarRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var e models.CalendarEvent
		if err := rows.Scan(&e.EventID, &e.Title, &e.Description, &e.EventDate,
			&e.EventType, &e.CreatedBy, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*calendarRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}
