// Package logging sets up the application logger. The terminal belongs to
// the UI, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Init returns a logger appending to path at the given level.
// The returned closer releases the file.
func Init(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, lvl), f, nil
}

// New returns a text logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.PanicLevel)
}
