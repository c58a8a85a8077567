package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/kerbaras/fictions/pkg/app"
	"github.com/kerbaras/fictions/pkg/config"
	"github.com/kerbaras/fictions/pkg/data"
	"github.com/kerbaras/fictions/pkg/services"
	"github.com/kerbaras/fictions/pkg/sources"
	"github.com/kerbaras/fictions/pkg/utils"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fictions",
	Short: "A terminal reader for web fiction",
	Long:  "Track web fictions, browse their chapters and read them in your terminal",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		history, closeHistory := openHistory(cfg)
		defer closeHistory()

		controller := services.NewLibraryController(newSource(cfg), data.NewLibrary(cfg.Library.Path), historyOf(history))
		a := app.NewApp(controller, cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/fictions/config.toml)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	cobra.CheckErr(err)
	return cfg
}

func newSource(cfg *config.Config) *sources.RoyalRoad {
	api := utils.NewAPI(cfg.Source.BaseURL).
		WithTimeout(cfg.Source.Timeout()).
		WithUserAgent(cfg.Source.UserAgent)
	return sources.NewRoyalRoad(api)
}

// openHistory opens the reading history. Reading works without it, so a
// failure only logs a warning and returns nil.
func openHistory(cfg *config.Config) (*data.Repository, func()) {
	repo, err := data.NewDuckDBRepository(cfg.Library.History)
	if err != nil {
		log.Printf("Warning: reading history disabled: %v", err)
		return nil, func() {}
	}
	return repo, func() {
		if err := repo.Close(); err != nil {
			log.Printf("Warning: failed to close history: %v", err)
		}
	}
}

// historyOf avoids handing a typed nil to the controller.
func historyOf(repo *data.Repository) services.History {
	if repo == nil {
		return nil
	}
	return repo
}

func parseID(arg string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil || id <= 0 || fmt.Sprint(id) != arg {
		return 0, fmt.Errorf("invalid fiction id %q", arg)
	}
	return id, nil
}
