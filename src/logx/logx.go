// Package logx wraps zerolog behind a small helper API. Init configures the
// global logger once at startup: human-readable console output in development,
// JSON in production.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Init(development bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if development {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	log.Logger = logger
}

func Logger() *zerolog.Logger {
	return &log.Logger
}

func Info(msg string, fields ...any) {
	Logger().Info().Fields(fields).Msg(msg)
}

func Warn(msg string, fields ...any) {
	Logger().Warn().Fields(fields).Msg(msg)
}

func Error(err error, msg string, fields ...any) {
	Logger().Error().Err(err).Fields(fields).Msg(msg)
}

func Fatal(err error, msg string, fields ...any) {
	Logger().Fatal().Err(err).Fields(fields).Msg(msg)
}
