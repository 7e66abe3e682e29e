// internal/logging/logging.go - Logger construction
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"

	"github.com/valpere/mbtiles_inspect/internal/config"
)

// New builds a logrus logger from the logging configuration. Output goes to
// stderr when terminal logging is enabled, and additionally to a dated file
// when a log directory is configured.
func New(cfg config.LoggingConfig) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		ShowFullLevel:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	writers := make([]io.Writer, 0, 2)
	if cfg.Directory != "" {
		if err := os.MkdirAll(cfg.Directory, os.ModePerm); err != nil {
			return nil, err
		}
		filename := filepath.Join(cfg.Directory, time.Now().Format("2006-01-02")+".log")
		file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}
	if cfg.Terminal {
		writers = append(writers, os.Stderr)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}
	logger.SetOutput(io.MultiWriter(writers...))

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger, nil
}
