// Package form describes the editable field sets of each content region.
// A Schema is a static list of fields with typed accessors, so editors can
// present a region as flat string values and turn the edited values back
// into the typed region.
package form

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// Kind selects how a field is presented and parsed.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindImage    Kind = "image"
	// KindArray fields are shown comma separated and split back on commas.
	KindArray  Kind = "array"
	KindNumber Kind = "number"
)

// Field binds one form key to a value of T.
type Field[T any] struct {
	Key   string
	Label string
	Kind  Kind
	Get   func(T) string
	Set   func(*T, string) error
}

// Descriptor is the presentation part of a field.
type Descriptor struct {
	Key   string
	Label string
	Kind  Kind
}

// Schema is the ordered field set of a value of type T.
type Schema[T any] struct {
	Title  string
	Fields []Field[T]
	// VarTag validates non-struct values such as content.Footer.
	VarTag string
}

// Descriptors lists the fields in display order.
func (s Schema[T]) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, Descriptor{Key: f.Key, Label: f.Label, Kind: f.Kind})
	}
	return out
}

// Field looks up a field by key.
func (s Schema[T]) Field(key string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Values renders v as form values keyed by field key.
func (s Schema[T]) Values(v T) map[string]string {
	out := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Key] = f.Get(v)
	}
	return out
}

// Fill applies values on top of initial and validates the result. Keys not
// in values keep their initial value; unknown keys are rejected.
func Fill[T any](s Schema[T], initial T, values map[string]string) (T, error) {
	out := initial
	for key, raw := range values {
		f, ok := s.Field(key)
		if !ok {
			return initial, apperrors.NewValidationError(key, fmt.Sprintf("unknown field %q for %s", key, s.Title), nil)
		}
		if err := f.Set(&out, raw); err != nil {
			return initial, apperrors.NewValidationError(key, err.Error(), err)
		}
	}
	if err := s.validate(out); err != nil {
		return initial, err
	}
	return out, nil
}

func (s Schema[T]) validate(v T) error {
	if reflect.Indirect(reflect.ValueOf(v)).Kind() == reflect.Struct {
		return convertValidationError(Validator().Struct(v))
	}
	if s.VarTag != "" {
		return convertValidationError(Validator().Var(v, s.VarTag))
	}
	return nil
}

// SplitList parses a comma separated list, trimming entries and dropping
// empty ones.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList renders a list the way SplitList reads it.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

func text[T any](key, label string, get func(T) string, set func(*T, string)) Field[T] {
	return textOf(KindText, key, label, get, set)
}

func textOf[T any](kind Kind, key, label string, get func(T) string, set func(*T, string)) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Kind:  kind,
		Get:   get,
		Set: func(v *T, raw string) error {
			set(v, raw)
			return nil
		},
	}
}

func list[T any](key, label string, get func(T) []string, set func(*T, []string)) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Kind:  KindArray,
		Get:   func(v T) string { return JoinList(get(v)) },
		Set: func(v *T, raw string) error {
			set(v, SplitList(raw))
			return nil
		},
	}
}

func number[T any](key, label string, get func(T) float64, set func(*T, float64)) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Kind:  KindNumber,
		Get:   func(v T) string { return strconv.FormatFloat(get(v), 'f', -1, 64) },
		Set: func(v *T, raw string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return fmt.Errorf("%q is not a number", raw)
			}
			set(v, f)
			return nil
		},
	}
}
