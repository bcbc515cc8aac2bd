// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. EXPENSE_LOG_LEVEL for log.level.
const EnvPrefix = "EXPENSE"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Display struct {
		DecimalPlaces int `mapstructure:"decimal_places" yaml:"decimal_places"`
	} `mapstructure:"display" yaml:"display"`

	Export struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"export" yaml:"export"`

	Shell struct {
		Prompt       string `mapstructure:"prompt" yaml:"prompt"`
		EchoCommands bool   `mapstructure:"echo_commands" yaml:"echo_commands"`
	} `mapstructure:"shell" yaml:"shell"`
}

// SupportedExportFormats lists the accepted values of export.format.
var SupportedExportFormats = []string{"csv", "json", "yaml"}

// InitializeConfig loads configuration from defaults, an optional config file
// and EXPENSE_* environment variables, in increasing priority.
//
// When configFile is empty, config.yaml is searched in $HOME/.expense-tracker,
// .expense-tracker and the working directory; a missing file is fine. An
// explicitly named file must exist.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expense-tracker")
		v.AddConfigPath(".expense-tracker")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configFile != "":
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		case errors.As(err, &notFound):
			// defaults and environment only
		default:
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration made of defaults only. It panics if the
// defaults do not decode into Config, which is a programming error.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("display.decimal_places", 2)

	v.SetDefault("export.format", "csv")
	v.SetDefault("export.delimiter", ",")

	v.SetDefault("shell.prompt", "> ")
	v.SetDefault("shell.echo_commands", false)
}

// Validate checks an already loaded configuration, e.g. after command line
// overrides were applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	var problems []string

	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level: %s", config.Log.Level))
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format))
	}

	if config.Display.DecimalPlaces < 0 || config.Display.DecimalPlaces > 6 {
		problems = append(problems, fmt.Sprintf("display.decimal_places must be between 0 and 6, got: %d", config.Display.DecimalPlaces))
	}

	if !IsSupportedExportFormat(config.Export.Format) {
		problems = append(problems, fmt.Sprintf("unsupported export format: %s (must be one of %s)",
			config.Export.Format, strings.Join(SupportedExportFormats, ", ")))
	}

	if len([]rune(config.Export.Delimiter)) != 1 {
		problems = append(problems, fmt.Sprintf("export delimiter must be a single character, got: %q", config.Export.Delimiter))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// IsSupportedExportFormat reports whether format is a known export format.
func IsSupportedExportFormat(format string) bool {
	for _, f := range SupportedExportFormats {
		if f == format {
			return true
		}
	}
	return false
}

// DelimiterRune returns the export delimiter as a rune, defaulting to ','.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.Export.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
