package common

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// FieldErrors maps a field path (e.g. "tickets[0].row") to a message
type FieldErrors map[string]string

func (f FieldErrors) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

func (f FieldErrors) prefixed(prefix string) FieldErrors {
	out := make(FieldErrors, len(f))
	for k, v := range f {
		switch {
		case k == "":
			out[prefix] = v
		case strings.HasPrefix(k, "["):
			out[prefix+k] = v
		default:
			out[prefix+"."+k] = v
		}
	}
	return out
}

// ValidationError is structurally invalid input. Never retried.
type ValidationError struct {
	Fields FieldErrors
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: FieldErrors{field: message}}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.String()
}

// Add records another field failure
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = FieldErrors{}
	}
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// OrNil returns nil when nothing was recorded, so callers can `return v.OrNil()`
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

// ConstraintError is well-formed input that conflicts with persisted state.
type ConstraintError struct {
	Fields FieldErrors
}

func NewConstraintError(field, message string) *ConstraintError {
	return &ConstraintError{Fields: FieldErrors{field: message}}
}

func (e *ConstraintError) Error() string {
	return "constraint violated: " + e.Fields.String()
}

// NotFoundError is a reference to an id that does not exist.
type NotFoundError struct {
	Resource string
	ID       any
	Field    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// AuthorizationError is raised before any validation runs.
type AuthorizationError struct {
	Message   string
	Forbidden bool
}

func (e *AuthorizationError) Error() string { return e.Message }

// WithFieldPrefix rewrites field keys of validation, constraint and not-found errors
// so that nested failures point at their position in the request body.
func WithFieldPrefix(err error, prefix string) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &ValidationError{Fields: ve.Fields.prefixed(prefix)}
	}
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return &ConstraintError{Fields: ce.Fields.prefixed(prefix)}
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		field := prefix
		if nf.Field != "" {
			field = prefix + "." + nf.Field
		}
		return &NotFoundError{Resource: nf.Resource, ID: nf.ID, Field: field}
	}
	return err
}

// StatusFor maps an error to its HTTP status code
func StatusFor(err error) int {
	var (
		ve *ValidationError
		ce *ConstraintError
		nf *NotFoundError
		ae *AuthorizationError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ce):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		// an unknown id inside a request body is a bad request, not a missing resource
		if nf.Field != "" {
			return http.StatusBadRequest
		}
		return http.StatusNotFound
	case errors.As(err, &ae):
		if ae.Forbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FieldsOf extracts the field map carried by err, if any
func FieldsOf(err error) FieldErrors {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Fields
	}
	var nf *NotFoundError
	if errors.As(err, &nf) && nf.Field != "" {
		return FieldErrors{nf.Field: nf.Error()}
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConstraintError(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
