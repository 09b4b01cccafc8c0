package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/humanpath/pkg/easing"
)

// newEasingsCmd lists the easing catalog so users can pick a --easing value.
func newEasingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "easings",
		Short: "Lists the available easing profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range easing.Catalog() {
				fmt.Fprintln(cmd.OutOrStdout(), e.Name)
			}
			return nil
		},
	}
}
