package config

const (
	defaultCaesarShift  = 3
	defaultFrequencyTop = 0
	defaultOutputStyle  = "table"
	defaultOutputColor  = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Caesar: Caesar{
			DefaultShift: defaultCaesarShift,
		},
		Frequency: Frequency{
			Top: defaultFrequencyTop,
		},
		Output: Output{
			Style: defaultOutputStyle,
			Color: defaultOutputColor,
		},
	}
}
