package config

type Config struct {
	DiscordAuth DiscordAuth     `yaml:"discord_auth" validate:"required"`
	Meta        Meta            `yaml:"meta" validate:"required"`
	Commands    []CommandConfig `yaml:"commands" validate:"required,dive"`
}

type DiscordAuth struct {
	Token         string `yaml:"token" comment:"Discord bot token" validate:"required"`
	ApplicationID string `yaml:"application_id" comment:"Discord Application ID" validate:"required"`
}

type Meta struct {
	GuildID  string `yaml:"guild_id" comment:"Guild to scope commands to. Leave empty to register globally"`
	CacheDir string `yaml:"cache_dir" default:"cache/commands" comment:"Directory for the command hash cache" validate:"required"`
	APIUrl   string `yaml:"api_url" comment:"Discord API base URL override. Leave empty for the default"`
}

// CommandConfig declares one command to register. Names and descriptions are
// validated by the builders at sync time, not here.
type CommandConfig struct {
	Name        string         `yaml:"name" comment:"Command name" validate:"required"`
	Description string         `yaml:"description" comment:"Command description" validate:"required"`
	Options     []OptionConfig `yaml:"options" comment:"Options of the command"`
}

// OptionConfig declares one option. Type is the lowercase OptionType name
// (string, integer, boolean, user, ...). String and integer options may
// carry Choices.
type OptionConfig struct {
	Type        string         `yaml:"type" comment:"Option type" validate:"required"`
	Name        string         `yaml:"name" comment:"Option name" validate:"required"`
	Description string         `yaml:"description" comment:"Option description" validate:"required"`
	Required    bool           `yaml:"required" comment:"Whether the option must be provided"`
	Choices     []ChoiceConfig `yaml:"choices" comment:"Predefined choices, only for string and integer options"`
}

// ChoiceConfig declares one predefined choice. Value may be an integer or a
// string; its YAML type picks the choice kind.
type ChoiceConfig struct {
	Name  string `yaml:"name" comment:"Choice name" validate:"required"`
	Value any    `yaml:"value" comment:"Choice value, integer or string" validate:"required"`
}
