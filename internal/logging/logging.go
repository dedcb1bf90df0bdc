package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Output goes to a file because the TUI
// owns the terminal; if the file cannot be opened the logger is silenced
// rather than corrupting the display.
func New(level, file string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	log.SetOutput(io.Discard)
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err == nil {
			if f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
				log.SetOutput(f)
			}
		}
	}

	return log
}
