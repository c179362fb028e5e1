package registrar

import (
	"fmt"

	"swallowtail/checks"
	"swallowtail/config"
	"swallowtail/interactions"
)

// optionTypeNames maps the config-facing type names onto the registry.
var optionTypeNames = map[string]interactions.OptionType{
	"subcommand":       interactions.OptionTypeSubCommand,
	"subcommand-group": interactions.OptionTypeSubCommandGroup,
	"string":           interactions.OptionTypeString,
	"integer":          interactions.OptionTypeInteger,
	"boolean":          interactions.OptionTypeBoolean,
	"user":             interactions.OptionTypeUser,
	"channel":          interactions.OptionTypeChannel,
	"role":             interactions.OptionTypeRole,
	"mentionable":      interactions.OptionTypeMentionable,
	"number":           interactions.OptionTypeNumber,
}

// Build translates declared commands into builders. Invalid declarations
// surface as the builders' own argument errors, wrapped with the command and
// option they came from.
func Build(declared []config.CommandConfig) ([]*interactions.CommandBuilder, error) {
	builders := make([]*interactions.CommandBuilder, 0, len(declared))

	for _, cc := range declared {
		builder, err := interactions.NewCommandBuilder(cc.Name, cc.Description)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", cc.Name, err)
		}

		for _, oc := range cc.Options {
			option, err := buildOption(oc)
			if err != nil {
				return nil, fmt.Errorf("command %q, option %q: %w", cc.Name, oc.Name, err)
			}

			builder.AddOption(option)
		}

		builders = append(builders, builder)
	}

	return builders, nil
}

func buildOption(oc config.OptionConfig) (*interactions.OptionBuilder, error) {
	typ, ok := optionTypeNames[oc.Type]
	if !ok {
		return nil, &checks.ArgumentError{Message: fmt.Sprintf("unknown option type %q", oc.Type)}
	}

	option, err := interactions.NewOptionBuilder(typ, oc.Name, oc.Description)
	if err != nil {
		return nil, err
	}

	option.SetRequired(oc.Required)

	for _, choice := range oc.Choices {
		// YAML leaves the value's kind to the document, mirroring the
		// JSON wire contract: integers become int choices, strings
		// become string choices.
		switch v := choice.Value.(type) {
		case int:
			err = option.AddIntChoice(choice.Name, int64(v))
		case int64:
			err = option.AddIntChoice(choice.Name, v)
		case string:
			err = option.AddStringChoice(choice.Name, v)
		default:
			err = &checks.ArgumentError{Message: fmt.Sprintf("choice %q value must be an integer or a string", choice.Name)}
		}

		if err != nil {
			return nil, err
		}
	}

	return option, nil
}
