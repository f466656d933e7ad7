package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	cfgpkg "toplist/internal/config"
	"toplist/internal/rank"
	"toplist/internal/report"
	"toplist/internal/traits"
	"toplist/internal/utils"
)

var (
	runOut         string
	runSaveMapping bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract the top lists and write the workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		if runOut != "" {
			c.Output = runOut
		}
		log := slog.With(slog.String("run_id", uuid.NewString()))

		traitIDs, err := effectiveTraits(c)
		if err != nil {
			return err
		}
		log.Info("traits resolved", slog.Int("count", len(traitIDs)))

		names, err := effectiveMapping(c, traitIDs)
		if err != nil {
			return err
		}
		if runSaveMapping {
			if err := names.Save(c.MappingFile, c.DelimiterRune()); err != nil {
				if !errors.Is(err, traits.ErrMappingExists) {
					return err
				}
				// Existing mapping files may carry manual edits; keep them.
				log.Info("mapping file exists, not overwritten",
					slog.String("path", c.MappingFile))
			} else {
				log.Info("mapping file written", slog.String("path", c.MappingFile))
			}
		}

		agg, err := rank.Run(c.Specs(), traitIDs, c.Columns.Descriptive, c.DelimiterRune(), names)
		if err != nil {
			return err
		}
		if err := report.Write(agg, names, c.Output); err != nil {
			return err
		}
		log.Info("run complete",
			slog.Int("breeds", len(agg.Breeds)),
			slog.Int("sheets", len(agg.Traits)),
			slog.String("output", c.Output))
		fmt.Printf("✓ Wrote %s (%d sheets)\n", c.Output, len(agg.Traits))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runOut, "out", "", "output workbook path (overrides config)")
	runCmd.Flags().BoolVar(&runSaveMapping, "save-mapping", false, "persist the trait name mapping if no mapping file exists yet")
	rootCmd.AddCommand(runCmd)
}

// effectiveTraits returns the configured trait list, or discovers it from the
// breed file headers when the config leaves it empty.
func effectiveTraits(c *cfgpkg.Global) ([]string, error) {
	if len(c.Traits) > 0 {
		return c.Traits, nil
	}
	ids, err := traits.Discover(c.Files, c.DelimiterRune(), c.NonTrait())
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no trait columns found in %d breed file(s)", len(c.Files))
	}
	return ids, nil
}

// effectiveMapping loads the mapping file when present, else builds the
// identity mapping from the trait ids.
func effectiveMapping(c *cfgpkg.Global, traitIDs []string) (*traits.NameMap, error) {
	if utils.FileExists(c.MappingFile) {
		return traits.Load(c.MappingFile, c.DelimiterRune())
	}
	return traits.BuildDefault(traitIDs), nil
}
