// Package logger configures the process-wide logrus logger with rotating
// file output alongside stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
)

// Setup points logrus at stdout plus a daily-rotated file under dir.
// Rotated files older than maxAgeDays are removed. When the rotation
// writer cannot be created the logger falls back to stdout only.
func Setup(level, dir string, maxAgeDays int) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if dir == "" {
		log.SetOutput(os.Stdout)
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	writer, err := rotatelogs.New(
		filepath.Join(dir, "server.%Y-%m-%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, "server.log")),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(time.Duration(maxAgeDays)*24*time.Hour),
	)
	if err != nil {
		log.SetOutput(os.Stdout)
		log.WithError(err).Warn("log rotation disabled, writing to stdout only")
		return nil
	}

	log.SetOutput(io.MultiWriter(os.Stdout, writer))
	return nil
}
