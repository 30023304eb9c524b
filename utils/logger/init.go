package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// GlobalContext is the request-aware logger built on Logger.
var GlobalContext *ContextLogger

// Init builds the process logger. JSON goes to stdout with trace correlation;
// when enableOTel is set records are also exported through the OTel bridge.
func Init(enableOTel bool) *slog.Logger {
	return InitWithWriter(os.Stdout, enableOTel)
}

// InitWithWriter is Init with an explicit destination for the JSON stream.
func InitWithWriter(w io.Writer, enableOTel bool) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	var handler slog.Handler
	if enableOTel {
		handler = NewMultiHandler(w, level)
	} else {
		handler = NewTraceContextHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
	GlobalContext = NewContextLogger(Logger)

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
