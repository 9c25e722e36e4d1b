package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dkoval/college-resource-hub/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, role, department, is_verified)
    VALUES ($1, $2, $3, $4, $5, FALSE)
    RETURNING user_id, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, role, department, is_verified, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, role, department, is_verified, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	deleteUnverifiedUser = `DELETE FROM users
    WHERE email = $1 AND is_verified = FALSE;`

	setUserVerified = `UPDATE users
    SET is_verified = TRUE, updated_at = NOW()
    WHERE email = $1;`

	createOTP = `INSERT INTO otp_codes (email, code, expires_at)
    VALUES ($1, $2, $3)
    RETURNING otp_id, created_at;`

	deleteOTPsForEmail = `DELETE FROM otp_codes
    WHERE email = $1;`

	findLatestOTP = `SELECT otp_id, email, code, expires_at, consumed, created_at
    FROM otp_codes
    WHERE email = $1 AND code = $2
    ORDER BY created_at DESC
    LIMIT 1;`

	markOTPConsumed = `UPDATE otp_codes
    SET consumed = TRUE
    WHERE otp_id = $1;`

	createResource = `INSERT INTO resources (title, description, file_name, file_path, file_size, file_type, subject, department, uploaded_by, category, is_approved)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING resource_id, download_count, created_at;`

	findResourceByID = `SELECT r.resource_id, r.title, r.description, r.file_name, r.file_path, r.file_size, r.file_type, r.subject, r.department, r.uploaded_by, r.category, r.is_approved, r.download_count, r.created_at, u.name, u.role
    FROM resources r
    JOIN users u ON r.uploaded_by = u.user_id
    WHERE r.resource_id = $1;`

	listResourcesByUploader = `SELECT resource_id, title, description, file_name, file_path, file_size, file_type, subject, department, uploaded_by, category, is_approved, download_count, created_at
    FROM resources
    WHERE uploaded_by = $1
    ORDER BY created_at DESC;`

	incrementDownloadCount = `UPDATE resources
    SET download_count = download_count + 1
    WHERE resource_id = $1;`

	setResourceApproval = `UPDATE resources
    SET is_approved = $1, updated_at = NOW()
    WHERE resource_id = $2;`

	createBookmark = `INSERT INTO bookmarks (user_id, resource_id)
    VALUES ($1, $2);`

	listBookmarksForUser = `SELECT b.bookmark_id, b.user_id, b.resource_id, b.created_at, r.title, r.description, r.file_name, r.subject, r.department, r.category, r.created_at, u.name
    FROM bookmarks b
    JOIN resources r ON b.resource_id = r.resource_id
    JOIN users u ON r.uploaded_by = u.user_id
    WHERE b.user_id = $1
    ORDER BY b.created_at DESC;`

	deleteBookmark = `DELETE FROM bookmarks
    WHERE user_id = $1 AND resource_id = $2;`

	createFeedback = `INSERT INTO feedback (user_id, resource_id, rating, comment)
    VALUES ($1, $2, $3, $4)
    RETURNING feedback_id, created_at;`

	listFeedbackForResource = `SELECT f.feedback_id, f.user_id, f.resource_id, f.rating, f.comment, f.created_at, u.name
    FROM feedback f
    JOIN users u ON f.user_id = u.user_id
    WHERE f.resource_id = $1
    ORDER BY f.created_at DESC;`

	listFeedbackByUser = `SELECT f.feedback_id, f.user_id, f.resource_id, f.rating, f.comment, f.created_at, r.title, r.file_name
    FROM feedback f
    JOIN resources r ON f.resource_id = r.resource_id
    WHERE f.user_id = $1
    ORDER BY f.created_at DESC;`

	updateFeedback = `UPDATE feedback
    SET rating = $1, comment = $2
    WHERE feedback_id = $3 AND user_id = $4;`

	deleteFeedback = `DELETE FROM feedback
    WHERE feedback_id = $1 AND user_id = $2;`

	createCalendarEvent = `INSERT INTO academic_calendar (title, description, event_date, event_type, created_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING event_id, created_at;`

	subscribeNewsletter = `INSERT INTO newsletter_subscriptions (email)
    VALUES ($1);`

	unsubscribeNewsletter = `UPDATE newsletter_subscriptions
    SET is_active = FALSE
    WHERE email = $1;`
)

// psql is the statement builder used for queries whose WHERE clause depends
// on request parameters. PostgreSQL uses $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListResourcesQuery assembles the filtered resource listing. Only
// approved resources are visible; each non-empty filter field narrows the
// result, and Search matches title or description case-insensitively.
func buildListResourcesQuery(filter models.ResourceFilter) (string, []any, error) {
	builder := psql.
		Select(
			"r.resource_id", "r.title", "r.description", "r.file_name",
			"r.file_path", "r.file_size", "r.file_type", "r.subject",
			"r.department", "r.uploaded_by", "r.category", "r.is_approved",
			"r.download_count", "r.created_at", "u.name", "u.role",
		).
		From("resources r").
		Join("users u ON r.uploaded_by = u.user_id").
		Where(sq.Eq{"r.is_approved": true})

	if filter.Department != "" {
		builder = builder.Where(sq.Eq{"r.department": filter.Department})
	}
	if filter.Subject != "" {
		builder = builder.Where(sq.Eq{"r.subject": filter.Subject})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"r.category": filter.Category})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"r.title": pattern},
			sq.ILike{"r.description": pattern},
		})
	}

	return builder.OrderBy("r.created_at DESC").ToSql()
}

// buildListCalendarQuery assembles the calendar listing, optionally narrowed
// to a single month. The month filter applies only when both Month and Year
// are set.
func buildListCalendarQuery(filter models.CalendarFilter) (string, []any, error) {
	builder := psql.
		Select("event_id", "title", "description", "event_date", "event_type", "COALESCE(created_by, 0)", "created_at").
		From("academic_calendar")

	if filter.Month != 0 && filter.Year != 0 {
		builder = builder.
			Where(sq.Expr("EXTRACT(MONTH FROM event_date) = ?", filter.Month)).
			Where(sq.Expr("EXTRACT(YEAR FROM event_date) = ?", filter.Year))
	}

	return builder.OrderBy("event_date ASC").ToSql()
}
