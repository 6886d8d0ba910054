package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGCode(t *testing.T) {
	pg := &pgconn.PgError{Code: "23505", ConstraintName: "books_pkey"}

	if got := PGCode(fmt.Errorf("insert: %w", pg)); got != "23505" {
		t.Fatalf("want 23505, got %q", got)
	}
	if !IsUniqueViolation(pg) {
		t.Fatal("expected unique violation")
	}
	if PGCode(errors.New("boom")) != "" {
		t.Fatal("plain errors have no SQLSTATE")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23502"}) {
		t.Fatal("not_null is not a unique violation")
	}
}
