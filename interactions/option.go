package interactions

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"swallowtail/checks"
	"swallowtail/data"
)

var japi = jsoniter.ConfigCompatibleWithStandardLibrary

// MaxChoices is the most choices a single option may carry.
const MaxChoices = 25

// choiceValue is one stored choice value: exactly one of an int64 or a
// string, tagged at insertion time.
type choiceValue struct {
	intValue    int64
	stringValue string
	isInt       bool
}

// OptionBuilder assembles a single command option. It validates on
// construction and on every choice mutation; a failed call leaves the builder
// in its prior state. Builders are not safe for concurrent mutation.
type OptionBuilder struct {
	typ         OptionType
	name        string
	description string
	required    bool

	// choices is allocated once at construction, and only when the option
	// type supports choices. A nil map means choice storage is structurally
	// disabled for this builder.
	choices *orderedmap.OrderedMap[string, choiceValue]
}

// NewOptionBuilder creates an option builder. The name must be 1-32
// lowercase alphanumeric-with-dash characters, the description 1-100
// characters. The option is not required by default.
func NewOptionBuilder(typ OptionType, name string, description string) (*OptionBuilder, error) {
	if err := checks.Check(typ != OptionTypeUnknown, "type may not be unknown"); err != nil {
		return nil, err
	}
	if err := checks.NotEmpty(name, "name"); err != nil {
		return nil, err
	}
	if err := checks.NotEmpty(description, "description"); err != nil {
		return nil, err
	}
	if err := checks.NotLonger(name, 32, "name"); err != nil {
		return nil, err
	}
	if err := checks.NotLonger(description, 100, "description"); err != nil {
		return nil, err
	}
	if err := checks.IsLowercase(name, "name"); err != nil {
		return nil, err
	}
	if err := checks.Matches(name, checks.AlphanumericWithDash, "name"); err != nil {
		return nil, err
	}

	b := &OptionBuilder{
		typ:         typ,
		name:        name,
		description: description,
	}

	if typ.CanSupportChoices() {
		b.choices = orderedmap.New[string, choiceValue]()
	}

	return b, nil
}

// Type returns the option type. The type is fixed at construction.
func (b *OptionBuilder) Type() OptionType {
	return b.typ
}

// Name returns the option name.
func (b *OptionBuilder) Name() string {
	return b.name
}

// Description returns the option description.
func (b *OptionBuilder) Description() string {
	return b.description
}

// Required reports whether the option must be provided on invocation.
func (b *OptionBuilder) Required() bool {
	return b.required
}

// SetRequired configures whether the option must be provided. It returns the
// same builder for chaining.
func (b *OptionBuilder) SetRequired(required bool) *OptionBuilder {
	b.required = required
	return b
}

// Choices returns a fresh snapshot of the stored choices in insertion order.
// Disabled or empty storage yields an empty slice.
func (b *OptionBuilder) Choices() []Choice {
	if b.choices == nil || b.choices.Len() == 0 {
		return []Choice{}
	}

	out := make([]Choice, 0, b.choices.Len())

	for pair := b.choices.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.isInt {
			out = append(out, NewIntChoice(pair.Key, pair.Value.intValue))
		} else {
			out = append(out, NewStringChoice(pair.Key, pair.Value.stringValue))
		}
	}

	return out
}

// AddIntChoice adds a predefined integer choice. Only valid for Integer
// options. Adding a name that already exists overwrites its value while
// keeping its original position.
func (b *OptionBuilder) AddIntChoice(name string, value int64) error {
	if err := checks.Check(b.choices != nil, "cannot add choices for type %s", b.typ); err != nil {
		return err
	}
	if err := checks.NotEmpty(name, "name"); err != nil {
		return err
	}
	if err := checks.NotLonger(name, 100, "name"); err != nil {
		return err
	}
	if err := checks.Check(b.choices.Len() < MaxChoices, "cannot have more than %d choices for an option", MaxChoices); err != nil {
		return err
	}
	if err := checks.Check(b.typ == OptionTypeInteger, "cannot add int choice for type %s", b.typ); err != nil {
		return err
	}

	b.choices.Set(name, choiceValue{intValue: value, isInt: true})

	return nil
}

// AddStringChoice adds a predefined string choice. Only valid for String
// options. Adding a name that already exists overwrites its value while
// keeping its original position.
func (b *OptionBuilder) AddStringChoice(name string, value string) error {
	if err := checks.Check(b.choices != nil, "cannot add choices for type %s", b.typ); err != nil {
		return err
	}
	if err := checks.NotEmpty(name, "name"); err != nil {
		return err
	}
	if err := checks.NotEmpty(value, "value"); err != nil {
		return err
	}
	if err := checks.NotLonger(name, 100, "name"); err != nil {
		return err
	}
	if err := checks.NotLonger(value, 100, "value"); err != nil {
		return err
	}
	if err := checks.Check(b.choices.Len() < MaxChoices, "cannot have more than %d choices for an option", MaxChoices); err != nil {
		return err
	}
	if err := checks.Check(b.typ == OptionTypeString, "cannot add string choice for type %s", b.typ); err != nil {
		return err
	}

	b.choices.Set(name, choiceValue{stringValue: value})

	return nil
}

// optionWire is the outbound shape of one option.
type optionWire struct {
	Type        int          `json:"type"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Required    *bool        `json:"required,omitempty"`
	Choices     []choiceWire `json:"choices,omitempty"`
}

type choiceWire struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// MarshalJSON emits the canonical wire form of the option. The required flag
// is omitted for SubCommand and SubCommandGroup options; the choices array is
// omitted when empty.
func (b *OptionBuilder) MarshalJSON() ([]byte, error) {
	wire := optionWire{
		Type:        b.typ.Key(),
		Name:        b.name,
		Description: b.description,
	}

	if b.typ != OptionTypeSubCommand && b.typ != OptionTypeSubCommandGroup {
		wire.Required = &b.required
	}

	if b.choices != nil && b.choices.Len() > 0 {
		wire.Choices = make([]choiceWire, 0, b.choices.Len())

		for pair := b.choices.Oldest(); pair != nil; pair = pair.Next() {
			cw := choiceWire{Name: pair.Key}

			if pair.Value.isInt {
				cw.Value = pair.Value.intValue
			} else {
				cw.Value = pair.Value.stringValue
			}

			wire.Choices = append(wire.Choices, cw)
		}
	}

	return japi.Marshal(wire)
}

// LoadOption parses a serialized option back into a builder. This is the
// reverse of MarshalJSON. Shape violations (missing or mistyped fields)
// return a *data.ParsingError; the reconstructed builder passes through the
// same validation as direct construction, so invalid contents return a
// *checks.ArgumentError.
func LoadOption(raw []byte) (*OptionBuilder, error) {
	obj, err := data.Decode(raw)
	if err != nil {
		return nil, err
	}

	name, err := obj.GetString("name")
	if err != nil {
		return nil, err
	}

	description, err := obj.GetString("description")
	if err != nil {
		return nil, err
	}

	key, err := obj.GetInt("type")
	if err != nil {
		return nil, err
	}

	b, err := NewOptionBuilder(OptionTypeFromKey(key), name, description)
	if err != nil {
		return nil, err
	}

	required, ok, err := obj.GetBool("required")
	if err != nil {
		return nil, err
	}
	if ok {
		b.SetRequired(required)
	}

	arr, err := obj.OptArray("choices")
	if err != nil {
		return nil, err
	}

	for _, el := range arr {
		co, err := data.ToObject(el)
		if err != nil {
			return nil, err
		}

		choiceName, err := co.GetString("name")
		if err != nil {
			return nil, err
		}

		value, present := co.Get("value")
		if !present {
			return nil, &data.ParsingError{Message: `missing required field "value"`}
		}

		// The value kind is inferred from the JSON value's own shape,
		// then replayed through the matching add path so a malformed
		// choice list fails the same way a hand-built one would.
		switch v := value.(type) {
		case json.Number:
			n, nerr := v.Int64()
			if nerr != nil {
				return nil, &data.ParsingError{Message: "choice value is not an integer: " + nerr.Error()}
			}
			if err := b.AddIntChoice(choiceName, n); err != nil {
				return nil, err
			}
		case string:
			if err := b.AddStringChoice(choiceName, v); err != nil {
				return nil, err
			}
		default:
			return nil, &data.ParsingError{Message: "choice value must be a number or a string"}
		}
	}

	return b, nil
}
