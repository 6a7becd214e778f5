package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("запись не найдена")
	ErrDuplicate         = errors.New("значение уже существует")
	ErrRequired          = errors.New("обязательное поле не заполнено")
	ErrTooLong           = errors.New("значение превышает допустимую длину")
	ErrDanglingReference = errors.New("ссылка на несуществующую запись")
	ErrInvalid           = errors.New("неверное значение поля")
	ErrIntegrity         = errors.New("нарушена целостность данных")
)

// ConstraintError reports which stored field rejected a write.
type ConstraintError struct {
	Table      string
	Column     string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	switch {
	case e.Table != "" && e.Column != "":
		return fmt.Sprintf("%s.%s: %v", e.Table, e.Column, e.Err)
	case e.Table != "":
		return fmt.Sprintf("%s: %v", e.Table, e.Err)
	case e.Constraint != "":
		return fmt.Sprintf("%s: %v", e.Constraint, e.Err)
	}
	return e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
