package cmd

import (
	"fmt"
	"slices"

	"github.com/kerbaras/fictions/pkg/data"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id>...",
	Short: "Add fictions to your library",
	Long:  "Fetch each fiction by its numeric ID and add it to the tracked list",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		source := newSource(cfg)
		library := data.NewLibrary(cfg.Library.Path)
		history, closeHistory := openHistory(cfg)
		defer closeHistory()

		ids, err := library.Load()
		cobra.CheckErr(err)

		for _, arg := range args {
			id, err := parseID(arg)
			cobra.CheckErr(err)

			fmt.Printf("🔍 Fetching fiction %d...\n", id)
			fiction, err := source.GetFiction(id)
			if err != nil {
				cobra.CheckErr(fmt.Errorf("failed to add %d: %w", id, err))
			}

			if history != nil {
				if err := history.SaveFiction(fiction); err != nil {
					fmt.Printf("⚠️  Failed to record '%s': %v\n", fiction.Title, err)
				}
			}

			if slices.Contains(ids, id) {
				fmt.Printf("📚 '%s' is already in your library\n", fiction.Title)
				continue
			}
			ids = append(ids, id)
			fmt.Printf("✅ Added '%s' with %d chapters\n", fiction.Title, len(fiction.Chapters))
		}

		cobra.CheckErr(library.Save(ids))
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>...",
	Aliases: []string{"rm"},
	Short:   "Remove fictions from your library",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		library := data.NewLibrary(cfg.Library.Path)
		history, closeHistory := openHistory(cfg)
		defer closeHistory()

		ids, err := library.Load()
		cobra.CheckErr(err)

		for _, arg := range args {
			id, err := parseID(arg)
			cobra.CheckErr(err)

			if !slices.Contains(ids, id) {
				fmt.Printf("❌ Fiction %d is not in your library\n", id)
				continue
			}
			ids = slices.DeleteFunc(ids, func(v int) bool { return v == id })
			if history != nil {
				if err := history.DeleteFiction(id); err != nil {
					fmt.Printf("⚠️  Failed to forget %d: %v\n", id, err)
				}
			}
			fmt.Printf("🗑️  Removed fiction %d\n", id)
		}

		cobra.CheckErr(library.Save(ids))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
}
