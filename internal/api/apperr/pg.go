package apperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// FromPG maps a PostgreSQL error to a status and client-safe message.
// Returns ok=false when err is not a *pgconn.PgError.
func FromPG(err error) (status int, message string, ok bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return 0, "", false
	}

	switch pg.Code {
	case "23505": // unique_violation
		return http.StatusConflict, "value already exists", true
	case "23503": // foreign_key_violation
		return http.StatusConflict, "resource is referenced by other records", true
	case "23502": // not_null_violation
		msg := "required field is missing"
		if pg.ColumnName != "" {
			msg = pg.ColumnName + " is required"
		}
		return http.StatusBadRequest, msg, true
	case "23514": // check_violation
		return http.StatusUnprocessableEntity, "constraint failed", true
	case "22001": // string_data_right_truncation
		return http.StatusBadRequest, "value is too long", true
	case "22003": // numeric_value_out_of_range
		return http.StatusBadRequest, "value is out of range", true
	case "40001": // serialization_failure
		return http.StatusConflict, "transaction conflict, please retry", true
	case "40P01": // deadlock_detected
		return http.StatusConflict, "deadlock detected, please retry", true
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), true
	}
}

// HandleDBError writes err as a mapped PG error or a generic 500.
func HandleDBError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg, ok := FromPG(err)
	if !ok {
		Internal(w, r, err)
		return
	}
	if status >= http.StatusInternalServerError {
		log.Printf("[http] %s %s: %v", r.Method, r.URL.Path, err)
	}
	Write(w, status, msg)
}
