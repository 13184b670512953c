package config

// Config holds chapsplit configuration.
// Loaded from ./config.yaml or ~/.chapsplit/config.yaml.
type Config struct {
	Defaults DefaultsCfg `mapstructure:"defaults" yaml:"defaults"`
	Logging  LoggingCfg  `mapstructure:"logging" yaml:"logging"`
}

// DefaultsCfg supplies fallbacks for flags the user leaves unset.
type DefaultsCfg struct {
	OutDir     string `mapstructure:"outdir" yaml:"outdir"`           // Output directory for chapter files
	PageOffset int    `mapstructure:"page_offset" yaml:"page_offset"` // Book page to PDF index correction
}

// LoggingCfg controls log verbosity.
type LoggingCfg struct {
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsCfg{
			OutDir:     "chapters",
			PageOffset: 0,
		},
		Logging: LoggingCfg{
			Verbose: false,
		},
	}
}
