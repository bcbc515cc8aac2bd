// Package shell provides the interactive command of the expense tracker.
package shell

import (
	"fmt"
	"io"
	"os"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

var scriptFile string

// Cmd represents the shell command
var Cmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the expense tracker command shell",
	Long: `Start a command shell over an empty expense list. Commands are read from
standard input, or from a script file with --script. Type 'help' for the list
of commands.`,
	Args: cobra.NoArgs,
	RunE: shellFunc,
}

func init() {
	Cmd.Flags().StringVarP(&scriptFile, "script", "s", "", "Read commands from this file instead of standard input")
}

func shellFunc(cmd *cobra.Command, args []string) error {
	c, err := root.NewContainer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	in := cmd.InOrStdin()
	if scriptFile != "" {
		file, err := os.Open(scriptFile) // #nosec G304 -- CLI tool requires user-provided file paths
		if err != nil {
			return fmt.Errorf("failed to open script %s: %w", scriptFile, err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close script file")
			}
		}()
		in = file
		root.Log.Debug("Running script", logging.F("script", scriptFile))
	}

	return c.NewShell(isTerminal(in)).Run(cmd.Context(), in)
}

// isTerminal reports whether in is an interactive character device.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
