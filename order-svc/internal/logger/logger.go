package logger

import (
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
)

// New returns a JSON logger that stamps every record with the service name and
// the host it runs on.
func New(service, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, service, level)
}

func NewWithWriter(w io.Writer, service, level string) *slog.Logger {
	hostname, _ := os.Hostname()

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Err groups an error with the stack of the goroutine that logs it.
func Err(err error) slog.Attr {
	return slog.Group("error",
		slog.String("msg", err.Error()),
		slog.String("stack", string(debug.Stack())),
	)
}
