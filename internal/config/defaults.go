package config

const (
	defaultConfigPath = "~/.config/textfilter/config.toml"
	projectConfigName = "textfilter.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
	defaultColor      = true
	defaultSummary    = false
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Color:   defaultColor,
			Summary: defaultSummary,
		},
	}
}
