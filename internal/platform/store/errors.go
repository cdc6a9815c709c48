// Package store defines the error taxonomy shared by all repositories.
// Repositories classify driver failures into these sentinels so services and
// handlers never depend on pgx directly.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUnauthenticated means no user identity was attached to the call.
	ErrUnauthenticated = errors.New("store: unauthenticated")
	// ErrNotFound means the row does not exist or belongs to another user.
	ErrNotFound = errors.New("store: record not found")
	// ErrConstraint means the database rejected the data itself.
	ErrConstraint = errors.New("store: constraint violated")
	// ErrUnavailable covers transient failures worth retrying.
	ErrUnavailable = errors.New("store: backend unavailable")
)

// Classify maps a pgx error onto the taxonomy. Data and integrity errors
// (SQLSTATE classes 22 and 23) become ErrConstraint; everything else that is
// not a missing row is treated as transient.
func Classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 && (pgErr.Code[:2] == "22" || pgErr.Code[:2] == "23") {
			return ErrConstraint
		}
	}
	return ErrUnavailable
}
