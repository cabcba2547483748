package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List every tracked word and its schedule",
	Run: func(cmd *cobra.Command, args []string) {
		trainer, store, _, err := openTrainer()
		if err != nil {
			fmt.Println("❌ Store error:", err)
			return
		}
		defer store.Close()

		records := trainer.Reviews()
		if len(records) == 0 {
			fmt.Println("No words tracked yet. Try: drill import words.txt")
			return
		}

		fmt.Printf("📚 %d tracked words:\n\n", len(records))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Word\tLevel\tMastery\tStreak\tWrong\tNext review")
		fmt.Fprintln(w, "----\t-----\t-------\t------\t-----\t-----------")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%d%%\t%d\t%d\t%s\n",
				rec.Word, rec.Level, rec.MasteryPercent(), rec.Streak, rec.WrongTotal, formatDue(rec))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
