package config

import "time"

// TranslateConfig controls the machine-translation step.
type TranslateConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	TargetLang string `mapstructure:"target_lang" yaml:"target_lang"`
}

// Config holds server configuration values.
type Config struct {
	Addr              string          `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration   `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration   `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string          `mapstructure:"log_level" yaml:"log_level"`
	MessageRateLimit  int             `mapstructure:"message_rate_limit" yaml:"message_rate_limit"`
	Translate         TranslateConfig `mapstructure:"translate" yaml:"translate"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		MessageRateLimit:  0,
		Translate: TranslateConfig{
			Enabled:    true,
			TargetLang: "es",
		},
	}
}
