package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"eventide/internal/event"
)

var flagListDays int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
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

		now := time.Now()
		events, err := source.GetEvents(now, now.AddDate(0, 0, flagListDays))
		if err != nil {
			return fmt.Errorf("loading events: %w", err)
		}
		event.SortByStart(events)

		if len(events) == 0 {
			fmt.Printf("No events in the next %d days.\n", flagListDays)
			return nil
		}

		for _, ev := range events {
			fmt.Printf("%s  %s  %-12s %s\n",
				ev.StartDate.Format("2006-01-02"), ev.StartTime, ev.Type.Label(), ev.Title)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&flagListDays, "days", 30, "how many days ahead to list")
	rootCmd.AddCommand(listCmd)
}
