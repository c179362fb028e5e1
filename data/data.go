// Package data wraps decoded JSON payloads with typed accessors. Missing or
// wrongly-shaped fields surface as a *ParsingError, which marks a violation of
// the external wire contract rather than caller misuse.
package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var japi = jsoniter.ConfigCompatibleWithStandardLibrary

// ParsingError signals that an external JSON payload is missing a required
// field or carries a field of the wrong shape.
type ParsingError struct {
	Message string
}

func (e *ParsingError) Error() string {
	return e.Message
}

func newError(format string, args ...any) *ParsingError {
	return &ParsingError{Message: fmt.Sprintf(format, args...)}
}

// Object is a decoded JSON object. Numbers are kept as json.Number so integer
// values round-trip exactly and value shapes stay inspectable.
type Object map[string]any

// Decode parses raw into an Object.
func Decode(raw []byte) (Object, error) {
	dec := japi.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj Object
	if err := dec.Decode(&obj); err != nil {
		return nil, newError("payload is not a valid json object: %s", err)
	}

	if obj == nil {
		return nil, newError("payload is not a json object")
	}

	return obj, nil
}

// DecodeArray parses raw into a slice of decoded values.
func DecodeArray(raw []byte) ([]any, error) {
	dec := japi.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var arr []any
	if err := dec.Decode(&arr); err != nil {
		return nil, newError("payload is not a valid json array: %s", err)
	}

	return arr, nil
}

// ToObject converts a decoded array element into an Object.
func ToObject(v any) (Object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, newError("expected a json object, got %T", v)
	}

	return Object(m), nil
}

// GetString reads a required string field.
func (o Object) GetString(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", newError("missing required field %q", key)
	}

	s, ok := v.(string)
	if !ok {
		return "", newError("field %q is not a string", key)
	}

	return s, nil
}

// GetInt reads a required integer field.
func (o Object) GetInt(key string) (int, error) {
	v, ok := o[key]
	if !ok {
		return 0, newError("missing required field %q", key)
	}

	n, ok := v.(json.Number)
	if !ok {
		return 0, newError("field %q is not a number", key)
	}

	i, err := n.Int64()
	if err != nil {
		return 0, newError("field %q is not an integer: %s", key, err)
	}

	return int(i), nil
}

// GetBool reads an optional bool field. The second return reports presence.
func (o Object) GetBool(key string) (bool, bool, error) {
	v, ok := o[key]
	if !ok {
		return false, false, nil
	}

	b, ok := v.(bool)
	if !ok {
		return false, false, newError("field %q is not a bool", key)
	}

	return b, true, nil
}

// GetUnsignedLong reads a required uint64 field from its decimal string form.
// A plain JSON number is also accepted for robustness.
func (o Object) GetUnsignedLong(key string) (uint64, error) {
	v, ok := o[key]
	if !ok {
		return 0, newError("missing required field %q", key)
	}

	switch t := v.(type) {
	case string:
		u, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return 0, newError("field %q is not an unsigned integer: %s", key, err)
		}
		return u, nil
	case json.Number:
		u, err := strconv.ParseUint(t.String(), 10, 64)
		if err != nil {
			return 0, newError("field %q is not an unsigned integer: %s", key, err)
		}
		return u, nil
	default:
		return 0, newError("field %q is not an unsigned integer", key)
	}
}

// OptArray reads an optional array field. Absent fields return a nil slice.
func (o Object) OptArray(key string) ([]any, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, newError("field %q is not an array", key)
	}

	return arr, nil
}

// Get returns the raw decoded value of a field, with presence.
func (o Object) Get(key string) (any, bool) {
	v, ok := o[key]
	return v, ok
}
