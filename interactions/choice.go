package interactions

import (
	"encoding/json"
	"strconv"

	"swallowtail/data"
)

// Choice is a predefined value a user may pick for a string or integer
// option. A Choice is immutable and originates from exactly one of an int64
// or a string value.
type Choice struct {
	name        string
	intValue    int64
	stringValue string
}

// NewIntChoice creates a choice backed by an integer value. The string
// projection is the decimal rendering of the value.
func NewIntChoice(name string, value int64) Choice {
	return Choice{
		name:        name,
		intValue:    value,
		stringValue: strconv.FormatInt(value, 10),
	}
}

// NewStringChoice creates a choice backed by a string value. The integer
// projection of a string choice is always zero.
func NewStringChoice(name string, value string) Choice {
	return Choice{
		name:        name,
		stringValue: value,
	}
}

// ParseChoice decodes a choice from its wire object. The value kind is
// inferred from the JSON value's own shape: a number yields an int choice,
// a string yields a string choice.
func ParseChoice(obj data.Object) (Choice, error) {
	name, err := obj.GetString("name")
	if err != nil {
		return Choice{}, err
	}

	value, ok := obj.Get("value")
	if !ok {
		return Choice{}, &data.ParsingError{Message: `missing required field "value"`}
	}

	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return Choice{}, &data.ParsingError{Message: "choice value is not an integer: " + err.Error()}
		}
		return NewIntChoice(name, n), nil
	case string:
		return NewStringChoice(name, v), nil
	default:
		return Choice{}, &data.ParsingError{Message: "choice value must be a number or a string"}
	}
}

// Name returns the readable name shown to the user.
func (c Choice) Name() string {
	return c.name
}

// AsInt returns the integer value of the choice. String-origin choices
// report zero.
func (c Choice) AsInt() int64 {
	return c.intValue
}

// AsString returns the string value of the choice. Int-origin choices report
// the decimal rendering of their value.
func (c Choice) AsString() string {
	return c.stringValue
}
