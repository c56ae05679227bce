package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vendio/vendio/internal/shared"
)

// SQLSTATE codes surfaced by constraint violations.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// MapError classifies constraint violations so repositories do not leak
// raw driver errors across the component boundary.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return shared.Validationf("referenced record does not exist")
		case codeUniqueViolation:
			return shared.Conflictf("record already exists")
		}
	}
	return err
}
