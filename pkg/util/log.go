package util

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// InitLog route slog default logger through a charm logger on w
func InitLog(w io.Writer, verbose bool) *log.Logger {
	var logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	slog.SetDefault(slog.New(logger))
	return logger
}
