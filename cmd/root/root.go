// Package root contains the root command for the application
package root

import (
	"fmt"
	"io"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger instance for commands. It is replaced once the
	// configuration is loaded.
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded by the persistent pre-run hook.
	AppConfig *config.Config

	// Flags holds the values of the persistent flags.
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "Record expenses, filter them and see the running total.",
		Long: `expense-tracker keeps an in-memory list of expenses with a category
and a timestamp, shows them as a table with their total and lets you narrow the
table by category or minimum amount.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd)
		},
	}
)

// Init registers the persistent flags. It must be called once, before Execute.
func Init() {
	Cmd.PersistentFlags().StringVarP(&Flags.ConfigFile, "config", "c", "", "Config file (default searches $HOME/.expense-tracker/config.yaml)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format (text or json)")
}

func initializeConfig(cmd *cobra.Command) error {
	if envFile, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := config.InitializeConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}

	// flags win over file and environment
	if Flags.LogLevel != "" {
		cfg.Log.Level = Flags.LogLevel
	}
	if Flags.LogFormat != "" {
		cfg.Log.Format = Flags.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	AppConfig = cfg
	Log = logging.NewLogrusAdapterWithOutput(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	Log.Debug("Configuration loaded",
		logging.F("command", cmd.Name()),
		logging.F("config_file", Flags.ConfigFile))
	return nil
}

// GetConfig returns the loaded configuration, falling back to defaults when
// the pre-run hook has not run.
func GetConfig() *config.Config {
	if AppConfig == nil {
		return config.Default()
	}
	return AppConfig
}

// GetLogger returns the shared command logger.
func GetLogger() logging.Logger {
	return Log
}

// NewContainer wires the application against the loaded configuration, with
// the table rendered to out.
func NewContainer(out io.Writer) (*container.Container, error) {
	return container.NewContainer(GetConfig(), out)
}
