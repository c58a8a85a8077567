package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/fictions/pkg/app/components"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters <id>",
	Short: "List the chapters of a fiction",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		cobra.CheckErr(err)
		reverse, _ := cmd.Flags().GetBool("reverse")

		cfg := loadConfig()
		fiction, err := newSource(cfg).GetFiction(id)
		cobra.CheckErr(err)

		if len(fiction.Chapters) == 0 {
			fmt.Printf("'%s' has no chapters yet.\n", fiction.Title)
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Published")

		now := time.Now().Unix()
		n := len(fiction.Chapters)
		for i := range fiction.Chapters {
			index := i
			if reverse {
				index = n - 1 - i
			}
			ref := fiction.Chapters[index]
			t.Row(fmt.Sprintf("%d", index+1), runewidth.Truncate(ref.Title, 58, "..."), components.RelativeAge(now-ref.PublishedAt)+" ago")
		}

		fmt.Printf("\n📖 %s (%d chapters)\n", fiction.Title, n)
		fmt.Println(t)
	},
}

func init() {
	chaptersCmd.Flags().BoolP("reverse", "r", false, "List the most recent chapter first")
	rootCmd.AddCommand(chaptersCmd)
}
