// file: internals/helpers/db_error.go
package helper

import (
	"context"
	"errors"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FromDBError maps a store error onto the API taxonomy. Timeouts and
// cancelled statements become 503 (retryable) and must never be reported
// as 404 — callers rely on the distinction.
func FromDBError(err error, notFoundMsg string) *fiber.Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Store timeout, please retry")
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Store timeout, please retry")
	}

	switch pgErrorCode(err) {
	case "57014": // query_canceled (statement_timeout)
		return fiber.NewError(fiber.StatusServiceUnavailable, "Store timeout, please retry")
	case "23505": // unique_violation
		return fiber.NewError(fiber.StatusConflict, "Duplicate data")
	}

	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
}

// IsUniqueViolation reports whether err is a Postgres unique-index violation.
func IsUniqueViolation(err error) bool {
	return pgErrorCode(err) == "23505"
}

// pgErrorCode extracts the SQLSTATE whichever driver produced the error
// (pgx under GORM, lib/pq for raw database/sql paths).
func pgErrorCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
