package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "toplist/internal/config"
	"toplist/internal/utils"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or scaffold the toplist configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("breeds: %s\n", strings.Join(cfg.Breeds, ", "))
		fmt.Printf("files: %s\n", strings.Join(cfg.Files, ", "))
		fmt.Printf("top: %v\n", cfg.Top)
		if len(cfg.Traits) > 0 {
			fmt.Printf("traits: %s\n", strings.Join(cfg.Traits, ", "))
		} else {
			fmt.Println("traits: (discovered from file headers)")
		}
		fmt.Printf("delimiter: %q\n", cfg.Delimiter)
		fmt.Printf("columns.descriptive: %s\n", strings.Join(cfg.Columns.Descriptive, ", "))
		fmt.Printf("columns.excluded: %s\n", strings.Join(cfg.Columns.Excluded, ", "))
		fmt.Printf("mapping_file: %s\n", cfg.MappingFile)
		fmt.Printf("output: %s\n", cfg.Output)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter toplist.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "toplist.yaml"
		if utils.FileExists(path) {
			return fmt.Errorf("%s already exists", path)
		}
		starter := &cfgpkg.Global{
			Breeds:    []string{"BV", "OB"},
			Files:     []string{"data/bv.csv", "data/ob.csv"},
			Top:       []int{12, 5},
			Delimiter: ";",
			Columns: cfgpkg.Columns{
				Descriptive: []string{"Name", "Lebensnummer"},
				Excluded:    []string{"Anbieter"},
			},
			MappingFile: "merkmale.csv",
			Output:      "topliste.xlsx",
		}
		if err := cfgpkg.Save(starter, path); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
