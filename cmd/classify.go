package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var classifyCheckpointEvery int

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify every unprocessed question in the corpus",
	Long:  "Runs the pattern classifier and constraint repairer over all questions not yet in the metadata store. Interrupt with Ctrl+C; the next run resumes from the last checkpoint.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		if classifyCheckpointEvery > 0 {
			env.Pipeline.CheckpointEvery = classifyCheckpointEvery
		}

		stats, err := env.Pipeline.Run(ctx, env.Corpus)
		if err != nil {
			return err
		}

		fmt.Printf("Classified %d of %d questions (%d already done, %d repaired)\n",
			stats.Processed, stats.Total, stats.AlreadyDone, stats.Repaired)
		return nil
	},
}

var classifyOneCmd = &cobra.Command{
	Use:   "one <question-id>",
	Short: "Classify a single question by id and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		q, tier, _, ok := env.Corpus.Lookup(args[0])
		if !ok {
			return fmt.Errorf("question %s not found", args[0])
		}

		cls := env.Pipeline.ClassifyOne(q)
		fmt.Printf("Tier:          %s\n", tier)
		fmt.Printf("Regions:       %v\n", cls.Regions)
		fmt.Printf("Time periods:  %v\n", cls.TimePeriods)
		fmt.Printf("Answer type:   %s\n", cls.AnswerType)
		fmt.Printf("Themes:        %v\n", cls.SubjectThemes)
		return nil
	},
}

func init() {
	classifyCmd.Flags().IntVar(&classifyCheckpointEvery, "checkpoint-every", 0, "checkpoint interval (default from config)")
	classifyCmd.AddCommand(classifyOneCmd)
	rootCmd.AddCommand(classifyCmd)
}
