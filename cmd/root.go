package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eventide/internal/auth"
	"eventide/internal/calendar"
	"eventide/internal/config"
	"eventide/internal/event"
	"eventide/internal/logging"
	"eventide/internal/ui"
)

var (
	flagDataDir  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "eventide",
	Short: "Terminal event manager with a calendar and reminders",
	Long: `Eventide is a terminal app for managing events and reminders.

It provides a month-grid dashboard, a browsable event catalog, a
four-step event creation wizard with a live preview, and per-day
reminders with priorities.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		source, err := event.OpenFileSource(cfg.CatalogPath())
		if err != nil {
			return fmt.Errorf("opening event catalog: %w", err)
		}
		defer source.Close()

		store := calendar.NewStore(cfg.ReminderPath())
		reminders, err := store.Load()
		if err != nil {
			return fmt.Errorf("loading reminders: %w", err)
		}
		sched := calendar.NewScheduler(reminders, calendar.WithStore(store))

		mgr := auth.NewManager(
			auth.NewMockClient(cfg.AuthSecret),
			auth.NewFileStore(cfg.SessionPath()),
			cfg.AuthSecret,
		)

		model := ui.NewModel(cfg, log, mgr, source, sched)
		p := tea.NewProgram(model, tea.WithAltScreen())

		if err := source.Watch(func() {
			p.Send(ui.CatalogChangedMsg{})
		}); err != nil {
			log.WithError(err).Warn("file watching unavailable")
		}

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	},
}

// setup loads configuration, applies flag overrides, and builds the logger.
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating data dir: %w", err)
	}
	return cfg, logging.New(cfg.LogLevel, cfg.LogFile), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override the data directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override the log level (debug, info, warn, error)")
}
