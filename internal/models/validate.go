package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"socialblog/internal/schema"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report stored column names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("db"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks the user against the stored bounds before a write.
func (u *User) Validate() error {
	return validateEntity(schema.TableUser, u)
}

func (c *Comment) Validate() error {
	return validateEntity(schema.TableComment, c)
}

func (p *Post) Validate() error {
	return validateEntity(schema.TablePost, p)
}

func (m *Media) Validate() error {
	return validateEntity(schema.TableMedia, m)
}

func validateEntity(table string, entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return &ConstraintError{Table: table, Err: ErrInvalid}
	}

	// the first failing field is enough for the caller
	fe := fieldErrors[0]

	return &ConstraintError{
		Table:  table,
		Column: fe.Field(),
		Err:    sentinelForField(fe),
	}
}

func sentinelForField(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return ErrRequired
	case "max":
		// ids above the INTEGER range are invalid, not long
		if fe.Kind() != reflect.String {
			return ErrInvalid
		}
		return ErrTooLong
	default:
		return ErrInvalid
	}
}
