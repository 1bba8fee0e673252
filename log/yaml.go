package log

// yaml.v2 does not consult encoding.TextUnmarshaler, so the generated enums
// get explicit yaml shims here.

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (x *Level) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var input string
	if err := unmarshal(&input); err != nil {
		return err
	}

	return x.UnmarshalText([]byte(input))
}

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (x *FormatType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var input string
	if err := unmarshal(&input); err != nil {
		return err
	}

	return x.UnmarshalText([]byte(input))
}
