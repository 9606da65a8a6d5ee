package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NonFieldErrors is the key used for errors that are not bound to a single field.
const NonFieldErrors = "non_field_errors"

var (
	// ErrValidation is matched by every error produced by this package.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownField is matched by UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")

	// ErrRange is matched by RangeError.
	ErrRange = errors.New("value out of range")

	// ErrNotFound is matched by NotFoundError.
	ErrNotFound = errors.New("referenced entity not found")

	// ErrConflict is matched by ConflictError.
	ErrConflict = errors.New("unique value already in use")

	// ErrInvalidField is matched by FieldError.
	ErrInvalidField = errors.New("invalid field value")
)

// FieldReporter is implemented by errors that can describe themselves per field.
type FieldReporter interface {
	Fields() map[string][]string
}

// UnknownFieldError is returned when a payload carries keys its schema does not declare.
type UnknownFieldError struct {
	Keys []string
}

func (e *UnknownFieldError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = "'" + k + "'"
	}

	return fmt.Sprintf("invalid keys passed into serializer: {%s}", strings.Join(quoted, ", "))
}

// Is reports whether target is ErrValidation or ErrUnknownField.
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrValidation || target == ErrUnknownField
}

// Fields implements FieldReporter.
func (e *UnknownFieldError) Fields() map[string][]string {
	return map[string][]string{NonFieldErrors: {e.Error()}}
}

// RangeError is returned when a value lies outside its closed range.
type RangeError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	if e.Value < e.Min {
		return fmt.Sprintf("Ensure this value is greater than or equal to %d.", e.Min)
	}

	return fmt.Sprintf("Ensure this value is less than or equal to %d.", e.Max)
}

// Is reports whether target is ErrValidation or ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrValidation || target == ErrRange
}

// Fields implements FieldReporter.
func (e *RangeError) Fields() map[string][]string {
	return map[string][]string{e.Field: {e.Error()}}
}

// NotFoundError is returned when a referenced identifier does not resolve.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func (e *NotFoundError) Error() string {
	if _, byName := e.Value.(string); byName {
		return fmt.Sprintf("%s with name %v does not exist", e.Entity, e.Value)
	}

	return fmt.Sprintf("%s with id %v does not exist", e.Entity, e.Value)
}

// Is reports whether target is ErrValidation or ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrValidation || target == ErrNotFound
}

// Fields implements FieldReporter.
func (e *NotFoundError) Fields() map[string][]string {
	return map[string][]string{e.Field: {e.Error()}}
}

// ConflictError is returned when a unique value is already taken.
type ConflictError struct {
	Entity string
	Field  string
	Value  any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s %v already in use", e.Entity, e.Field, e.Value)
}

// Is reports whether target is ErrValidation or ErrConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrValidation || target == ErrConflict
}

// Fields implements FieldReporter.
func (e *ConflictError) Fields() map[string][]string {
	return map[string][]string{e.Field: {e.Error()}}
}

// FieldError is returned when a value has the wrong type, breaks a format rule or is missing.
type FieldError struct {
	Field string
	Tag   string
	Value any
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case TagRequired:
		return "This field is required."
	case TagNotNull:
		return "This field may not be null."
	case TagType:
		return fmt.Sprintf("Invalid value %v.", e.Value)
	default:
		return fmt.Sprintf("Field '%s' failed validation tag '%s'.", e.Field, e.Tag)
	}
}

// Is reports whether target is ErrValidation or ErrInvalidField.
func (e *FieldError) Is(target error) bool {
	return target == ErrValidation || target == ErrInvalidField
}

// Fields implements FieldReporter.
func (e *FieldError) Fields() map[string][]string {
	return map[string][]string{e.Field: {e.Error()}}
}

// Tags used by FieldError for failures that are not validator rules.
const (
	TagRequired = "required"
	TagNotNull  = "notnull"
	TagType     = "type"
)

// Details returns the per field description of err, or a single non field entry
// when err does not implement FieldReporter.
func Details(err error) map[string][]string {
	var fr FieldReporter
	if errors.As(err, &fr) {
		return fr.Fields()
	}

	return map[string][]string{NonFieldErrors: {err.Error()}}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
