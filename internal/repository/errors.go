package repository

import (
	"errors"

	"github.com/lib/pq"
	"socialblog/internal/models"
	"socialblog/internal/schema"
)

// PostgreSQL SQLSTATE codes the storage layer rejects writes with.
const (
	codeUniqueViolation          = "23505"
	codeNotNullViolation         = "23502"
	codeForeignKeyViolation      = "23503"
	codeStringTooLong            = "22001"
	codeNumericOutOfRange        = "22003"
	codeCharacterNotInRepertoire = "22021"
)

// translateError turns a constraint violation reported by PostgreSQL into a
// *models.ConstraintError. Any other error is returned unchanged.
func translateError(registry *schema.Registry, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	ce := &models.ConstraintError{
		Table:      pqErr.Table,
		Column:     pqErr.Column,
		Constraint: pqErr.Constraint,
	}

	switch string(pqErr.Code) {
	case codeUniqueViolation:
		ce.Err = models.ErrDuplicate
	case codeNotNullViolation:
		ce.Err = models.ErrRequired
	case codeForeignKeyViolation:
		ce.Err = models.ErrDanglingReference
	case codeStringTooLong:
		ce.Err = models.ErrTooLong
	case codeNumericOutOfRange, codeCharacterNotInRepertoire:
		ce.Err = models.ErrInvalid
	default:
		return err
	}

	if registry != nil && ce.Constraint != "" {
		if table, column, ok := registry.ConstraintColumn(ce.Constraint); ok {
			ce.Table = table
			ce.Column = column
		}
	}

	return ce
}
