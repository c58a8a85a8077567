package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kerbaras/fictions/pkg/app/components"
	"github.com/kerbaras/fictions/pkg/app/styles"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <id> <chapter>",
	Short: "Print a chapter",
	Long:  "Fetch chapter n (1-based, in source order) of a fiction and print it word-wrapped",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		cobra.CheckErr(err)
		n, err := strconv.Atoi(args[1])
		cobra.CheckErr(err)
		width, _ := cmd.Flags().GetInt("width")

		cfg := loadConfig()
		source := newSource(cfg)
		fiction, err := source.GetFiction(id)
		cobra.CheckErr(err)

		if n < 1 || n > len(fiction.Chapters) {
			cobra.CheckErr(fmt.Errorf("'%s' has %d chapters, no chapter %d", fiction.Title, len(fiction.Chapters), n))
		}
		ref := fiction.Chapters[n-1]

		chapter, err := source.GetChapter(ref)
		cobra.CheckErr(err)

		history, closeHistory := openHistory(cfg)
		defer closeHistory()
		if history != nil {
			if err := history.MarkRead(id, ref.Path, time.Now()); err != nil {
				fmt.Printf("⚠️  Failed to mark as read: %v\n", err)
			}
		}

		pane := components.NewReadingPane()
		pane.Open(chapter)

		fmt.Println(styles.TitleStyle.Render(chapter.Title))
		fmt.Println(strings.Join(pane.Wrap(width, math.MaxInt), "\n"))
	},
}

func init() {
	readCmd.Flags().IntP("width", "w", 80, "Wrap width in columns")
	rootCmd.AddCommand(readCmd)
}
