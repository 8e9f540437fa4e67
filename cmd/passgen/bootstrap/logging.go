package bootstrap

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/maybe-hello-world/passgen-embedded/cmd/passgen/config"
	"github.com/maybe-hello-world/passgen-embedded/pkg/logutils"
)

var (
	ErrLoggingInvalidLogOutput = errors.New("unknown logging output format")
	ErrLoggingInvalidLogLevel  = errors.New("unknown logging level")
)

// Logging configures the global zerolog settings and returns a logger writing to stderr.
// stdout is reserved for generated passwords
func Logging(cfg config.Config) (zerolog.Logger, error) {
	return LoggingTo(cfg, os.Stderr)
}

func LoggingTo(cfg config.Config, w io.Writer) (zerolog.Logger, error) {
	var output io.Writer
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	zerolog.DurationFieldUnit = time.Second
	zerolog.CallerMarshalFunc = logutils.ShortCallerFormatter

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, ErrLoggingInvalidLogLevel
	}
	zerolog.SetGlobalLevel(lvl)

	switch cfg.LogOutput {
	case "console":
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case "stdout":
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	case "json":
		output = w
	default:
		return zerolog.Logger{}, ErrLoggingInvalidLogOutput
	}

	logger := zerolog.New(output).With().Timestamp().Caller().Logger()
	logger.Debug().Stringer("level", zerolog.GlobalLevel()).Msg("Global logging level is set")
	return logger, nil
}
