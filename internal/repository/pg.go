package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// ListParams is the LIMIT/OFFSET window applied to paginated queries.
type ListParams struct {
	Limit  int
	Offset int
}

// translateErr maps driver-level failures onto the domain error taxonomy:
// missing rows become ErrNotFound, unique-index violations become ErrConflict.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
