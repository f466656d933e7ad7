package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "List the trait universe across all configured breed files",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		ids, err := effectiveTraits(c)
		if err != nil {
			return err
		}
		names, err := effectiveMapping(c, ids)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if name := names.Lookup(id); name != id {
				fmt.Printf("- %s: %s\n", id, name)
			} else {
				fmt.Printf("- %s\n", id)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traitsCmd)
}
