package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Barca0412/VocabMaster/internal/config"
	"github.com/Barca0412/VocabMaster/internal/settings"
)

var quizLimit int

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a self-graded review session over the due words",
	Long: `Run a review session. Each due word is shown in turn; you grade
yourself on whether you recalled it. Correct answers push the word to
a longer interval, wrong answers bring it back in five minutes.`,
	Run: func(cmd *cobra.Command, args []string) {
		trainer, store, cfg, err := openTrainer()
		if err != nil {
			fmt.Println("❌ Store error:", err)
			return
		}
		defer store.Close()

		due := trainer.Due(quizLimit)
		if len(due) == 0 {
			fmt.Println("✅ Nothing due right now. Good job.")
			return
		}

		reader := bufio.NewReader(os.Stdin)
		started := time.Now()
		correct, wrong := 0, 0

		for i, rec := range due {
			fmt.Println("\n========================================")
			fmt.Printf("Word [%d/%d]: %s   (level %s)\n", i+1, len(due), rec.Word, rec.Level)
			fmt.Println("========================================")
			fmt.Print("Did you recall this word? (y/n/q): ")

			input, _ := reader.ReadString('\n')
			input = strings.ToLower(strings.TrimSpace(input))

			if input == "q" {
				break
			}
			if input != "y" && input != "n" {
				fmt.Println("⚠️ Answer y, n, or q. Skipping this word.")
				continue
			}

			updated, err := trainer.RecordOutcome(rec.Word, input == "y", "", "")
			if err != nil {
				fmt.Println("⚠️ Saved in memory only:", err)
			}
			if input == "y" {
				correct++
				fmt.Printf("✅ Next review: %s\n", formatDue(updated))
			} else {
				wrong++
				fmt.Println("❌ Back in 5 minutes.")
			}
		}

		answered := correct + wrong
		if answered == 0 {
			fmt.Println("\nNo answers recorded.")
			return
		}

		accuracy := float64(correct) / float64(answered) * 100
		fmt.Println("\n🎉 Session complete!")
		fmt.Printf("Answered: %d   Correct: %d   Wrong: %d   Accuracy: %.1f%%\n",
			answered, correct, wrong, accuracy)

		recordStudySession(cfg, correct, int(time.Since(started).Seconds()))
	},
}

// recordStudySession folds the session into the persistent learning
// stats. Failures only cost the tally, so they are not fatal.
func recordStudySession(cfg *config.Config, wordsLearned, seconds int) {
	prefs, err := settings.NewStore(filepath.Join(cfg.DataDir, "config.json"))
	if err != nil {
		fmt.Println("⚠️ Could not open settings:", err)
		return
	}
	if _, err := prefs.AddStudySession(wordsLearned, seconds); err != nil {
		fmt.Println("⚠️ Could not record study session:", err)
	}
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().IntVarP(&quizLimit, "limit", "n", 0, "Maximum words to quiz (default 20)")
}
