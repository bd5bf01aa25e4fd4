// Package apperror classifies the failures the catalog core can return so
// the transport layer can map each kind to its own signal.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned by single-entity lookups that matched no row for
// the requested brand.
var ErrNotFound = errors.New("not found")

// CallerInputError reports a malformed brand, identity or filter value. It is
// raised before any storage access.
type CallerInputError struct {
	Field  string
	Reason string
}

func (e *CallerInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewCallerInput is a shorthand for &CallerInputError{...}.
func NewCallerInput(field, reason string) error {
	return &CallerInputError{Field: field, Reason: reason}
}

// ValidationError means storage returned a row that does not match the
// entity's declared shape. It is an internal fault, never user input.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s row failed validation on %q: %s", e.Entity, e.Field, e.Reason)
}

// InfrastructureError wraps a storage round trip that failed: unreachable,
// timed out, cancelled or rejected by the engine.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// Infrastructure wraps err unless it is nil.
func Infrastructure(op string, err error) error {
	if err == nil {
		return nil
	}
	return &InfrastructureError{Op: op, Err: err}
}

func IsCallerInput(err error) bool {
	var target *CallerInputError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsInfrastructure(err error) bool {
	var target *InfrastructureError
	return errors.As(err, &target)
}

// HTTPStatus maps an error kind to the response code used by the HTTP
// handlers.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsCallerInput(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
