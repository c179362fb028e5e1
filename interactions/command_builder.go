package interactions

import (
	"swallowtail/checks"
)

// CommandBuilder assembles a top-level command for registration. Command
// names follow the same rules as option names; descriptions the same bounds
// as option descriptions.
type CommandBuilder struct {
	name        string
	description string
	options     []*OptionBuilder
}

// NewCommandBuilder creates a command builder.
func NewCommandBuilder(name string, description string) (*CommandBuilder, error) {
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

	return &CommandBuilder{
		name:        name,
		description: description,
	}, nil
}

// Name returns the command name.
func (b *CommandBuilder) Name() string {
	return b.name
}

// Description returns the command description.
func (b *CommandBuilder) Description() string {
	return b.description
}

// Options returns the options added so far, in order.
func (b *CommandBuilder) Options() []*OptionBuilder {
	return b.options
}

// AddOption appends an option to the command. It returns the same builder
// for chaining.
func (b *CommandBuilder) AddOption(option *OptionBuilder) *CommandBuilder {
	b.options = append(b.options, option)
	return b
}

type commandWire struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Options     []*OptionBuilder `json:"options,omitempty"`
}

// MarshalJSON emits the outbound wire form of the command. The options array
// is omitted when empty.
func (b *CommandBuilder) MarshalJSON() ([]byte, error) {
	return japi.Marshal(commandWire{
		Name:        b.name,
		Description: b.description,
		Options:     b.options,
	})
}
