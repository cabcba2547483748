package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Barca0412/VocabMaster/internal/wordlist"
)

var (
	importList string
	importSave string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Add words to the review queue",
	Long: `Add words to the review queue from a text file (words separated
by commas, semicolons, or whitespace) or from a saved word list.
Already-known words are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && importList == "" {
			fmt.Println("❌ Give a file to import or use --list")
			cmd.Help()
			return
		}

		trainer, store, cfg, err := openTrainer()
		if err != nil {
			fmt.Println("❌ Store error:", err)
			return
		}
		defer store.Close()

		lists, err := openLists(cfg)
		if err != nil {
			fmt.Println("❌ Wordlist error:", err)
			return
		}

		var words []string
		switch {
		case importList != "":
			words, err = lists.Words(importList)
			if err != nil {
				fmt.Println("❌ List error:", err)
				return
			}
		default:
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Println("❌ Cannot read file:", err)
				return
			}
			words = wordlist.ParseWords(string(data))

			// Optionally keep the file as a named list too.
			if importSave != "" {
				if _, err := lists.Save(importSave, words); err != nil {
					fmt.Println("⚠️ Could not save list:", err)
				} else {
					fmt.Printf("📚 Saved list '%s' with %d words\n", importSave, len(words))
				}
			}
		}

		added, err := trainer.ImportWords(words)
		if err != nil {
			fmt.Println("⚠️ Saved in memory only:", err)
		}
		fmt.Printf("✅ Imported %d new words (%d already tracked)\n", added, len(words)-added)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importList, "list", "l", "", "Import words from a saved list")
	importCmd.Flags().StringVarP(&importSave, "save", "s", "", "Also save the imported file as a named list")
}
