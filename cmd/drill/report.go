package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the full learning report",
	Run: func(cmd *cobra.Command, args []string) {
		trainer, store, _, err := openTrainer()
		if err != nil {
			fmt.Println("❌ Store error:", err)
			return
		}
		defer store.Close()

		report := trainer.Report()

		fmt.Println("📋 Learning report")
		fmt.Println("------------------")
		fmt.Printf("Words tracked:  %d (%d quizzed)\n", report.Stats.TotalWords, report.Stats.QuizzedWords)
		fmt.Printf("Accuracy:       %.1f%% over %d attempts\n", report.Stats.OverallAccuracy, report.Stats.TotalAttempts)
		fmt.Printf("Advice:         %s\n", report.Recommendation)

		if len(report.WeakWords) > 0 {
			fmt.Printf("\n🔥 Weak words (%d):\n\n", len(report.WeakWords))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Word\tAttempts\tWrong\tAccuracy")
			fmt.Fprintln(w, "----\t--------\t-----\t--------")
			for _, rec := range report.WeakWords {
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", rec.Word, rec.QuizAttempts, rec.WrongCount, rec.Accuracy())
			}
			w.Flush()
		}

		if len(report.RecentMistakes) > 0 {
			fmt.Printf("\n⚠️ Recent mistakes (%d):\n\n", len(report.RecentMistakes))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Word\tWrong\tLast seen")
			fmt.Fprintln(w, "----\t-----\t---------")
			for _, rec := range report.RecentMistakes {
				fmt.Fprintf(w, "%s\t%d\t%s\n", rec.Word, rec.WrongCount, rec.LastSeen.Format("2006-01-02 15:04"))
			}
			w.Flush()
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
