package main

import (
	"io"

	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
