package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// newLogger returns a console logger writing to stderr, at debug level when
// verbose output is requested.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
