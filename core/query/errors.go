package query

import (
	"errors"
	"fmt"
	"net/http"
)

// InvalidQueryError marks a structurally contradictory query string, like a
// desc parameter without a sort parameter.
type InvalidQueryError struct {
	Reason string
}

func (err InvalidQueryError) Error() string {
	return err.Reason
}

// FieldNotAllowedError marks a field outside the endpoint's search fields.
type FieldNotAllowedError struct {
	Field string
}

func (err FieldNotAllowedError) Error() string {
	return fmt.Sprintf("field %q is not an accepted search field", err.Field)
}

// UnknownFieldError marks a field that is not a property of the entity.
type UnknownFieldError struct {
	Entity string
	Field  string
}

func (err UnknownFieldError) Error() string {
	return fmt.Sprintf("field %q does not exist on %q", err.Field, err.Entity)
}

// UnsupportedTransformerError marks a capability declaring a result
// transformer that is not registered.
type UnsupportedTransformerError struct {
	Name string
}

func (err UnsupportedTransformerError) Error() string {
	return fmt.Sprintf("result transformer %q is not registered", err.Name)
}

// IsBadRequest reports whether err belongs to the client-error taxonomy.
func IsBadRequest(err error) bool {
	var (
		invalidQuery    InvalidQueryError
		fieldNotAllowed FieldNotAllowedError
		unknownField    UnknownFieldError
		unsupported     UnsupportedTransformerError
	)
	return errors.As(err, &invalidQuery) ||
		errors.As(err, &fieldNotAllowed) ||
		errors.As(err, &unknownField) ||
		errors.As(err, &unsupported)
}

// StatusFor maps an error to the HTTP status the response shaper reports.
func StatusFor(err error) int {
	if IsBadRequest(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
