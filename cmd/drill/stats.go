package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review queue and quiz statistics",
	Run: func(cmd *cobra.Command, args []string) {
		trainer, store, _, err := openTrainer()
		if err != nil {
			fmt.Println("❌ Store error:", err)
			return
		}
		defer store.Close()

		stats := trainer.Stats()
		tracker := trainer.TrackerStats()

		fmt.Println("📊 Review queue")
		fmt.Println("---------------")
		fmt.Printf("Total words:     %d\n", stats.TotalWords)
		fmt.Printf("Due now:         %d\n", stats.DueCount)
		fmt.Printf("Average mastery: %d%%\n", stats.AverageMastery)
		fmt.Println()
		fmt.Printf("New: %d   Learning: %d   Young: %d   Mature: %d   Mastered: %d   Perfect: %d\n",
			stats.New, stats.Learning, stats.Young, stats.Mature, stats.Mastered, stats.Perfect)

		fmt.Println()
		fmt.Println("📊 Quiz performance")
		fmt.Println("-------------------")
		fmt.Printf("Quiz attempts:   %d\n", tracker.TotalAttempts)
		fmt.Printf("Correct:         %d\n", tracker.TotalCorrect)
		fmt.Printf("Accuracy:        %.1f%%\n", tracker.OverallAccuracy)
		fmt.Printf("Weak words:      %d\n", tracker.WeakWords)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
