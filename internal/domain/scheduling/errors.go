package scheduling

import (
	"errors"
	"fmt"
)

// ValidationError: a required field is missing or malformed. Always
// caller-fixable, maps to 400.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("campo obrigatório ausente ou inválido: %s", e.Field)
}

// NotFoundError: the operation target does not exist. Maps to 404.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d não encontrado", e.Entity, e.ID)
}

// PersistenceError: storage failure, constraint violation or connectivity
// fault. Maps to 500; the wrapped cause is for diagnostics, never shown to
// the end user.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
