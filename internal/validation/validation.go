// server/internal/validation/validation.go

// Package validation turns go-playground/validator and JSON decoding failures
// into one stable error shape: a list of failing fields, each with a reason.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError names one failing field by its JSON path.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is returned whenever an instance does not satisfy its schema.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator implements gin's binding.StructValidator so that ShouldBind*
// yields *Error values with JSON field names.
type Validator struct {
	once     sync.Once
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{}
}

// Default is shared by request binding and read-time re-validation.
var Default = New()

// Validate checks obj against its binding tags using Default.
func Validate(obj any) error {
	return Default.ValidateStruct(obj)
}

func (v *Validator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
		v.validate.SetTagName("binding")
		v.validate.RegisterTagNameFunc(fieldName)
	})
}

// ValidateStruct validates a struct or pointer to struct. Anything else is
// accepted as is.
func (v *Validator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	val := reflect.ValueOf(obj)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	v.lazyinit()
	if err := v.validate.Struct(obj); err != nil {
		return FromError(err)
	}
	return nil
}

// Engine exposes the underlying *validator.Validate.
func (v *Validator) Engine() any {
	v.lazyinit()
	return v.validate
}

// FromError converts validation and decoding failures into *Error. Any other
// error is reported against the request body as a whole.
func FromError(err error) *Error {
	var verr *Error
	if errors.As(err, &verr) {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
		for _, fe := range fieldErrs {
			out.Fields = append(out.Fields, FieldError{Field: fieldPath(fe), Reason: reason(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &Error{Fields: []FieldError{{Field: field, Reason: "must be of type " + jsonType(typeErr.Type)}}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &Error{Fields: []FieldError{{Field: "body", Reason: "malformed JSON: " + syntaxErr.Error()}}}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &Error{Fields: []FieldError{{Field: "body", Reason: "request body is empty or truncated"}}}
	}

	return &Error{Fields: []FieldError{{Field: "body", Reason: err.Error()}}}
}

// FromBindError is FromError for a failed JSON bind into partial. A type
// mismatch does not stop the decoder, so partial still holds every other
// field and is validated too; the result lists each failing field once.
func FromBindError(err error, partial any) *Error {
	out := FromError(err)

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return out
	}
	verr := Validate(partial)
	if verr == nil {
		return out
	}

	seen := make(map[string]struct{}, len(out.Fields))
	for _, f := range out.Fields {
		seen[f.Field] = struct{}{}
	}
	for _, f := range FromError(verr).Fields {
		if _, ok := seen[f.Field]; ok {
			continue
		}
		seen[f.Field] = struct{}{}
		out.Fields = append(out.Fields, f)
	}
	return out
}

func fieldName(sf reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return sf.Name
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "PickupRequest.email" -> "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "gte", "min":
		return "must be greater than or equal to " + fe.Param()
	case "lte", "max":
		return "must be less than or equal to " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func jsonType(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return t.String()
	}
}
