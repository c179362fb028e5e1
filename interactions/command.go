package interactions

import (
	"fmt"
	"strconv"

	"swallowtail/data"
)

// Command is a registered application command as returned by the platform.
// It is parsed once from a trusted payload and immutable afterwards, so it
// may be shared freely across goroutines.
type Command struct {
	id          uint64
	name        string
	description string
	options     []Option
	guildID     string
}

// ParseCommand decodes a command payload. guildID records the scope the
// command was fetched for; it is empty for global commands and only affects
// how later edit and delete calls address the command.
func ParseCommand(raw []byte, guildID string) (*Command, error) {
	obj, err := data.Decode(raw)
	if err != nil {
		return nil, err
	}

	return ParseCommandObject(obj, guildID)
}

// ParseCommandObject decodes a command from an already-decoded object. Used
// when the payload arrives inside a larger structure, such as the array
// returned by a command listing.
func ParseCommandObject(obj data.Object, guildID string) (*Command, error) {
	id, err := obj.GetUnsignedLong("id")
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

	options, err := parseOptions(obj)
	if err != nil {
		return nil, err
	}

	return &Command{
		id:          id,
		name:        name,
		description: description,
		options:     options,
		guildID:     guildID,
	}, nil
}

// parseOptions decodes the optional options array of a command or option
// node. An absent array yields an empty list.
func parseOptions(obj data.Object) ([]Option, error) {
	arr, err := obj.OptArray("options")
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(arr))

	for _, el := range arr {
		oo, err := data.ToObject(el)
		if err != nil {
			return nil, err
		}

		opt, err := parseOption(oo)
		if err != nil {
			return nil, err
		}

		options = append(options, opt)
	}

	return options, nil
}

// ID returns the command's snowflake id.
func (c *Command) ID() uint64 {
	return c.id
}

// IDString returns the command's snowflake id in its decimal string form.
func (c *Command) IDString() string {
	return strconv.FormatUint(c.id, 10)
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.name
}

// Description returns the command description.
func (c *Command) Description() string {
	return c.description
}

// Options returns the top-level options of this command. If the command uses
// subcommands the list holds those instead, each with its own nested options;
// subcommand groups nest one level further.
func (c *Command) Options() []Option {
	return c.options
}

// GuildID returns the guild the command is scoped to, or an empty string for
// a global command.
func (c *Command) GuildID() string {
	return c.guildID
}

func (c *Command) String() string {
	return fmt.Sprintf("C:%s(%d)", c.name, c.id)
}

// Option is one parsed node of a command's option tree: a leaf parameter, a
// subcommand, or a subcommand group. Parsing mirrors the payload
// structurally and deliberately re-applies no content validation; the
// upstream platform already validated it.
type Option struct {
	name        string
	description string
	typ         int
	options     []Option
	choices     []Choice
}

// ParseOption decodes a single option payload.
func ParseOption(raw []byte) (Option, error) {
	obj, err := data.Decode(raw)
	if err != nil {
		return Option{}, err
	}

	return parseOption(obj)
}

func parseOption(obj data.Object) (Option, error) {
	name, err := obj.GetString("name")
	if err != nil {
		return Option{}, err
	}

	description, err := obj.GetString("description")
	if err != nil {
		return Option{}, err
	}

	typ, err := obj.GetInt("type")
	if err != nil {
		return Option{}, err
	}

	options, err := parseOptions(obj)
	if err != nil {
		return Option{}, err
	}

	arr, err := obj.OptArray("choices")
	if err != nil {
		return Option{}, err
	}

	choices := make([]Choice, 0, len(arr))

	for _, el := range arr {
		co, err := data.ToObject(el)
		if err != nil {
			return Option{}, err
		}

		choice, err := ParseChoice(co)
		if err != nil {
			return Option{}, err
		}

		choices = append(choices, choice)
	}

	return Option{
		name:        name,
		description: description,
		typ:         typ,
		options:     options,
		choices:     choices,
	}, nil
}

// Name returns the name of this option, subcommand, or subcommand group.
func (o Option) Name() string {
	return o.name
}

// Description returns the description of this node.
func (o Option) Description() string {
	return o.description
}

// TypeRaw returns the raw numeric option type as received.
func (o Option) TypeRaw() int {
	return o.typ
}

// Type resolves the raw type against the OptionType registry.
func (o Option) Type() OptionType {
	return OptionTypeFromKey(o.typ)
}

// Options returns the nested options: the parameters of a subcommand, or the
// subcommands within a group.
func (o Option) Options() []Option {
	return o.options
}

// Choices returns the predefined choices of this option, empty if none.
func (o Option) Choices() []Choice {
	return o.choices
}
