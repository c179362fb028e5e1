package interactions

// OptionType is the kind of a single command option, as defined by the
// Discord application command wire contract.
type OptionType int

const (
	OptionTypeUnknown         OptionType = 0
	OptionTypeSubCommand      OptionType = 1
	OptionTypeSubCommandGroup OptionType = 2
	OptionTypeString          OptionType = 3
	OptionTypeInteger         OptionType = 4
	OptionTypeBoolean         OptionType = 5
	OptionTypeUser            OptionType = 6
	OptionTypeChannel         OptionType = 7
	OptionTypeRole            OptionType = 8
	OptionTypeMentionable     OptionType = 9
	OptionTypeNumber          OptionType = 10
)

// OptionTypeFromKey resolves a raw wire code to its OptionType. Unrecognized
// codes resolve to OptionTypeUnknown.
func OptionTypeFromKey(key int) OptionType {
	t := OptionType(key)

	if t < OptionTypeSubCommand || t > OptionTypeNumber {
		return OptionTypeUnknown
	}

	return t
}

// Key returns the numeric wire code of this type.
func (t OptionType) Key() int {
	return int(t)
}

// CanSupportChoices reports whether options of this type may carry a
// predefined choice list.
func (t OptionType) CanSupportChoices() bool {
	switch t {
	case OptionTypeString, OptionTypeInteger, OptionTypeNumber:
		return true
	default:
		return false
	}
}

func (t OptionType) String() string {
	switch t {
	case OptionTypeSubCommand:
		return "SubCommand"
	case OptionTypeSubCommandGroup:
		return "SubCommandGroup"
	case OptionTypeString:
		return "String"
	case OptionTypeInteger:
		return "Integer"
	case OptionTypeBoolean:
		return "Boolean"
	case OptionTypeUser:
		return "User"
	case OptionTypeChannel:
		return "Channel"
	case OptionTypeRole:
		return "Role"
	case OptionTypeMentionable:
		return "Mentionable"
	case OptionTypeNumber:
		return "Number"
	default:
		return "Unknown"
	}
}
