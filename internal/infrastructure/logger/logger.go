package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// GetLogger returns the global logger instance. Before New has run it
// yields a console logger at info level.
func GetLogger() zerolog.Logger {
	once.Do(func() {
		globalLogger = consoleLogger().Level(zerolog.InfoLevel)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	return globalLogger
}

// New constructs the service logger from configuration. Unknown levels
// and formats fall back to info/console rather than failing startup.
func New(cfg *config.Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if strings.ToLower(cfg.LogFormat) == "json" {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log = consoleLogger()
	}

	zerolog.SetGlobalLevel(lvl)

	once.Do(func() {})
	globalLogger = log.Level(lvl).With().Str("service", cfg.ServiceName).Logger()
	return globalLogger
}

func consoleLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).With().Timestamp().Logger()
}
