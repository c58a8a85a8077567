package app

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/fictions/pkg/app/screens"
	"github.com/kerbaras/fictions/pkg/config"
	"github.com/kerbaras/fictions/pkg/services"
)

// DebugEnv names the log file used while the TUI runs.
const DebugEnv = "FICTIONS_DEBUG"

type App struct {
	controller *services.LibraryController
	config     *config.Config
}

func NewApp(controller *services.LibraryController, cfg *config.Config) *App {
	return &App{controller: controller, config: cfg}
}

func (a *App) Run() error {
	if path := os.Getenv(DebugEnv); path != "" {
		f, err := tea.LogToFile(path, "fictions")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := screens.NewRootScreen(a.controller, screens.Options{
		Reversed: a.config.Display.Reversed,
		MarginX:  a.config.Display.MarginX,
		MarginY:  a.config.Display.MarginY,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
