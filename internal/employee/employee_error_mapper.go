package employee

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	employeeerrors "github.com/Maxwellrubert/employee-dashboard/internal/employee/errors"
)

// mapRepositoryError translates storage failures into the app taxonomy.
// A unique-index violation surfaces as the duplicate-email conflict: this
// is the path taken when two writers race past the EmailExists pre-check
// on the postgres driver.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmailAlreadyExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}
