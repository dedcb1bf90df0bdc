package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"eventide/internal/event"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the event catalog as iCalendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		source, err := event.OpenFileSource(cfg.CatalogPath())
		if err != nil {
			return fmt.Errorf("opening event catalog: %w", err)
		}
		defer source.Close()

		events, err := source.All()
		if err != nil {
			return fmt.Errorf("loading events: %w", err)
		}

		var out io.Writer = os.Stdout
		if flagExportOut != "" {
			f, err := os.Create(flagExportOut)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		return event.WriteICS(out, events)
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
