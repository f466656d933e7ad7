package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"toplist/internal/traits"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Manage the trait name mapping file",
}

var mappingInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the mapping file from the discovered traits",
	Long: `Builds the identity mapping (display name = abbreviation) for every
discovered trait and saves it. An existing mapping file is never overwritten,
so manual edits survive repeated runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		ids, err := effectiveTraits(c)
		if err != nil {
			return err
		}
		names := traits.BuildDefault(ids)
		if err := names.Save(c.MappingFile, c.DelimiterRune()); err != nil {
			if errors.Is(err, traits.ErrMappingExists) {
				fmt.Printf("Mapping file %s already exists, not overwritten\n", c.MappingFile)
				return nil
			}
			return err
		}
		fmt.Printf("✓ Wrote %s (%d traits)\n", c.MappingFile, len(ids))
		return nil
	},
}

var mappingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective trait name mapping",
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
			fmt.Printf("%s → %s\n", id, names.Lookup(id))
		}
		return nil
	},
}

func init() {
	mappingCmd.AddCommand(mappingInitCmd)
	mappingCmd.AddCommand(mappingShowCmd)
	rootCmd.AddCommand(mappingCmd)
}
