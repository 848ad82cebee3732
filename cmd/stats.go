package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show classification progress and label distributions",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()

		progress, err := env.Store.Progress(ctx)
		if err != nil {
			return err
		}
		all, err := env.Store.All(ctx)
		if err != nil {
			return err
		}

		totals := env.Corpus.Totals()
		fmt.Printf("Corpus: %d questions (preliminary %d, quarterfinals %d, semifinals %d, finals %d)\n",
			totals.Total, totals.Preliminary, totals.Quarterfinals, totals.Semifinals, totals.Finals)
		fmt.Printf("Classified: %d\n", len(all))
		if progress.LastUpdated != nil {
			fmt.Printf("Last updated: %s\n", progress.LastUpdated.Format("2006-01-02 15:04:05"))
		}
		fmt.Println()

		regions := make(map[string]int)
		periods := make(map[string]int)
		answerTypes := make(map[string]int)
		themes := make(map[string]int)
		for _, cls := range all {
			for _, l := range cls.Regions {
				regions[l]++
			}
			for _, l := range cls.TimePeriods {
				periods[l]++
			}
			answerTypes[cls.AnswerType]++
			for _, l := range cls.SubjectThemes {
				themes[l]++
			}
		}

		fmt.Println(renderTable("Regions", countRows(regions)))
		fmt.Println(renderTable("Time Periods", countRows(periods)))
		fmt.Println(renderTable("Answer Types", countRows(answerTypes)))
		fmt.Println(renderTable("Subject Themes", countRows(themes)))
		return nil
	},
}

// countRows sorts label counts descending, ties alphabetical.
func countRows(counts map[string]int) [][2]string {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	rows := make([][2]string, len(labels))
	for i, l := range labels {
		rows[i] = [2]string{l, strconv.Itoa(counts[l])}
	}
	return rows
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
