package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Barca0412/VocabMaster/internal/models"
)

var dueLimit int

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show words due for review now",
	Run: func(cmd *cobra.Command, args []string) {
		trainer, store, _, err := openTrainer()
		if err != nil {
			fmt.Println("❌ Store error:", err)
			return
		}
		defer store.Close()

		due := trainer.Due(dueLimit)
		if len(due) == 0 {
			fmt.Println("✅ Nothing due right now. Good job.")
			return
		}

		fmt.Printf("🔥 %d words due for review:\n\n", len(due))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Word\tLevel\tStreak\tDue")
		fmt.Fprintln(w, "----\t-----\t------\t---")
		for _, rec := range due {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", rec.Word, rec.Level, rec.Streak, formatDue(rec))
		}
		w.Flush()
	},
}

func formatDue(rec models.ReviewRecord) string {
	if rec.NextReview == nil {
		return "new"
	}
	if !time.Now().Before(*rec.NextReview) {
		return "now"
	}
	return rec.NextReview.Format("2006-01-02 15:04")
}

func init() {
	rootCmd.AddCommand(dueCmd)
	dueCmd.Flags().IntVarP(&dueLimit, "limit", "n", 0, "Maximum words to show (default 20)")
}
