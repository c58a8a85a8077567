package cmd

import (
	"fmt"
	"sync"

	"github.com/kerbaras/fictions/pkg/app/components"
	"github.com/kerbaras/fictions/pkg/integrations"
	"github.com/kerbaras/fictions/pkg/services"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a fiction to EPUB",
	Long:  "Fetch every chapter of a fiction and compile them into a single EPUB file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		cobra.CheckErr(err)

		cfg := loadConfig()
		outputDir, _ := cmd.Flags().GetString("output")
		if outputDir == "" {
			outputDir = cfg.Export.Dir
		}

		exporter := services.NewExporter(newSource(cfg), integrations.NewEPubBuilder(outputDir), cfg.Export.Concurrency)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker := components.NewExportTracker(80)
			for progress := range exporter.Progress() {
				tracker.Update(progress)
				fmt.Printf("\r%s", tracker.View())
			}
			fmt.Println()
		}()

		fmt.Printf("📥 Exporting fiction %d...\n", id)
		path, err := exporter.Export(id)
		exporter.Close()
		wg.Wait()
		cobra.CheckErr(err)

		fmt.Printf("📖 EPUB created: %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
