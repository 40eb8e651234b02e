package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"notes-calendar/internal/config"
)

// New создает logrus логгер по секции logger конфигурации
func New(cfg *config.ConfigLogger, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(out)

	if cfg == nil {
		return log, nil
	}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	if err := SetLevel(log, cfg.Level); err != nil {
		return nil, err
	}

	return log, nil
}

// SetLevel меняет уровень логгера, пустая строка означает info
func SetLevel(log *logrus.Logger, level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger level: %w", err)
	}
	log.SetLevel(lvl)
	return nil
}
