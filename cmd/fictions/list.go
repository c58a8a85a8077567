package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/fictions/pkg/app/components"
	"github.com/kerbaras/fictions/pkg/data"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fictions in your library",
	Long:  "Display the tracked fictions from the last snapshot, without going online",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ids, err := data.NewLibrary(cfg.Library.Path).Load()
		cobra.CheckErr(err)

		if len(ids) == 0 {
			fmt.Println("📚 No fictions in library. Use 'fictions add <id>' to track one.")
			return
		}

		history, closeHistory := openHistory(cfg)
		defer closeHistory()

		summaries := make(map[int]*data.FictionSummary)
		if history != nil {
			all, err := history.ListFictions()
			cobra.CheckErr(err)
			for _, s := range all {
				summaries[s.ID] = s
			}
		}

		columns := []table.Column{
			{Title: "ID", Width: 8},
			{Title: "Title", Width: 40},
			{Title: "Author", Width: 20},
			{Title: "Chapters", Width: 10},
			{Title: "Checked", Width: 14},
		}

		now := time.Now().Unix()
		rows := []table.Row{}
		for _, id := range ids {
			s, ok := summaries[id]
			if !ok {
				rows = append(rows, table.Row{fmt.Sprint(id), "(not fetched yet)", "", "", ""})
				continue
			}
			rows = append(rows, table.Row{
				fmt.Sprint(id),
				runewidth.Truncate(s.Title, 38, "..."),
				runewidth.Truncate(s.Author, 18, "..."),
				fmt.Sprintf("%d", s.ChapterCount),
				components.RelativeAge(now-s.UpdatedAt) + " ago",
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Library (%d fictions)\n\n", len(ids))
		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
