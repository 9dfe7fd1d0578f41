package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var log zerolog.Logger

func configure() {
	timeFormat := "15:04:05.000"
	zerolog.TimeFieldFormat = timeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
	}

	log = zerolog.New(output).With().Timestamp().Logger()
}

// GetConfigured returns the shared logger after setting the global level.
// The first caller wins; later calls return the same logger.
func GetConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configure()
		zerolog.SetGlobalLevel(level)
	})
	return &log
}

// Get returns the shared logger, configuring it on first use.
func Get() *zerolog.Logger {
	once.Do(configure)
	return &log
}
