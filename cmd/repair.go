package main

import (
	"fmt"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
)

var repairDryRun bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Re-run the constraint repairer over stored classifications",
	Long:  "Scans the metadata store for region and time period combinations that are historically impossible and rewrites them. Use --dry-run to report without writing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		pairCounts, fixed, err := env.Pipeline.RepairStored(ctx, env.Corpus, repairDryRun)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(pairCounts))
		for name := range pairCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-20s %d\n", name, pairCounts[name])
		}

		if repairDryRun {
			fmt.Printf("Would repair %d classifications (dry run)\n", fixed)
		} else {
			fmt.Printf("Repaired %d classifications\n", fixed)
		}
		return nil
	},
}

func init() {
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "report violations without writing")
	rootCmd.AddCommand(repairCmd)
}
