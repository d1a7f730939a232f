package logger

import (
	"io"
	"log/slog"
	"os"
)

var ProgramLevel = new(slog.LevelVar)

// SetupLogger initialiserer loggeren med JSON-format mot stdout og standard nivå.
func SetupLogger() {
	SetupLoggerTo(os.Stdout)
}

func SetupLoggerTo(w io.Writer) {
	ProgramLevel.Set(slog.LevelInfo)

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ProgramLevel,
		AddSource: false,
	})).With("app", "onelink-portfolio")
	slog.SetDefault(logger)
}

// SetDebug setter loggnivået til Debug hvis debug er true.
func SetDebug(debug bool) {
	if debug {
		ProgramLevel.Set(slog.LevelDebug)
	}
}
