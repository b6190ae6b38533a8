// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Debug is set to true when debug-level output is enabled
var Debug bool

func init() {
	Set(false, false)
	// console logger without color until the CLI has parsed its flags
	CliNoColorLogger()
}

// SetWriter configures a log writer for the global logger
func SetWriter(w io.Writer) {
	log.Logger = log.Output(w)
}

// UseJSONLogging switches to line-delimited JSON on stderr
func UseJSONLogging() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// CliLogger configures colored console output on stderr
func CliLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// CliNoColorLogger configures console output without ANSI color
func CliNoColorLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
}

// Set configures the global level; verbose wins over quiet.
func Set(verbose bool, quiet bool) {
	Debug = verbose
	switch {
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// InitTestEnv sets verbose, colorful logging for test runs
func InitTestEnv() {
	Set(true, false)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
