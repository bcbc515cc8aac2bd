// Package categories lists the accepted expense categories.
package categories

import (
	"fmt"

	"fjacquet/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the accepted expense categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range validation.ValidCategories() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
				return err
			}
		}
		return nil
	},
}
