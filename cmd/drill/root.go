package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Barca0412/VocabMaster/internal/clock"
	"github.com/Barca0412/VocabMaster/internal/config"
	"github.com/Barca0412/VocabMaster/internal/service"
	"github.com/Barca0412/VocabMaster/internal/storage"
	"github.com/Barca0412/VocabMaster/internal/wordlist"
)

var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "A spaced repetition vocabulary trainer",
	Long: `Drill schedules vocabulary reviews on expanding intervals and
tracks your quiz performance so weak words resurface first.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openTrainer wires the trainer against the configured store. The
// caller closes the returned store.
func openTrainer() (*service.TrainerService, storage.Store, *config.Config, error) {
	cfg := config.Load()
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return service.NewTrainerService(store, clock.System{}), store, cfg, nil
}

func openLists(cfg *config.Config) (*wordlist.Manager, error) {
	return wordlist.NewManager(filepath.Join(cfg.DataDir, "wordlists"), clock.System{})
}
