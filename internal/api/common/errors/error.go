package errors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type NotFoundError struct {
	Type string
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.Name)
}

func NotFoundErr(t, name string) NotFoundError {
	return NotFoundError{
		Type: t,
		Name: name,
	}
}

// ValidationError reports a malformed or missing request parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Message)
}

func ValidationErr(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: message,
	}
}

// StorageError wraps a database failure so handlers can map it to a 5xx
// without leaking driver details to the client.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func StorageErr(op string, err error) StorageError {
	return StorageError{
		Op:  op,
		Err: err,
	}
}

// StatusCode maps the error taxonomy onto HTTP status codes.
func StatusCode(err error) int {
	var (
		notFound   NotFoundError
		validation ValidationError
	)
	switch {
	case errors.As(err, &validation):
		return fiber.StatusBadRequest
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
