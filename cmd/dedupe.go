package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/quizbee-cli/internal/corpus"
	"github.com/sells-group/quizbee-cli/internal/model"
)

var dedupeDryRun bool

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate questions from the corpus",
	Long:  "Finds questions whose normalized text (HTML stripped, accents folded, case and whitespace collapsed) already appeared earlier in the corpus and removes them, keeping the first occurrence. Use --dry-run to report without writing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := corpus.Load(cfg.Corpus.File)
		if err != nil {
			return err
		}

		stats := c.Dedupe(dedupeDryRun)

		for _, tier := range model.Tiers {
			fmt.Printf("%-15s kept %4d, removed %d\n", tier, stats.Kept[tier], stats.Removed[tier])
		}

		if stats.TotalRemoved() == 0 {
			fmt.Println("No duplicates found")
			return nil
		}
		if dedupeDryRun {
			fmt.Printf("Would remove %d duplicates (dry run)\n", stats.TotalRemoved())
			return nil
		}

		if err := c.Save(cfg.Corpus.File); err != nil {
			return err
		}
		fmt.Printf("Removed %d duplicates\n", stats.TotalRemoved())
		return nil
	},
}

func init() {
	dedupeCmd.Flags().BoolVar(&dedupeDryRun, "dry-run", false, "report duplicates without writing")
	rootCmd.AddCommand(dedupeCmd)
}
