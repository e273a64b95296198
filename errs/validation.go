package errs

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError collects every violated field of a submission. Validation
// is all-or-nothing: a submission either passes whole or is rejected with the
// complete field->message map attached.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// AddField records a violation for a field. The first message per field wins,
// matching form re-display semantics upstream.
func (e *ValidationError) AddField(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StatusCode keeps the responder's status handling uniform with ApiErr.
func (e *ValidationError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
