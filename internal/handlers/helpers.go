package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/PerfectPlumbing/plumbing-ops/internal/middleware"
	"github.com/PerfectPlumbing/plumbing-ops/internal/timezone"
)

// Postgres error code for foreign_key_violation; raised when deleting a
// customer that still has jobs.
const pgFKViolation = "23503"

// isFKViolation reports whether err carries a postgres foreign-key
// violation.
func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgFKViolation
}

// currentUserID pulls the authenticated user id for audit attribution.
func currentUserID(c *gin.Context) *string {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(string); ok && id != "" {
			return &id
		}
	}
	return nil
}

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}
