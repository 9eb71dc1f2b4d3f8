package logging

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	Debug   *log.Logger
	Scanner *log.Logger
)

func init() {
	// Only enable logging if TMTREE_DEBUG environment variable is set
	if os.Getenv("TMTREE_DEBUG") == "" {
		Debug = log.New(io.Discard)
		Scanner = log.New(io.Discard)
		return
	}

	// Open debug.log once for all loggers; the TUI owns the terminal
	debugFile, err := os.OpenFile("debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Debug = New(os.Stderr, log.DebugLevel).WithPrefix("debug")
		Scanner = New(os.Stderr, log.DebugLevel).WithPrefix("scanner")
		return
	}

	Debug = New(debugFile, log.DebugLevel).WithPrefix("debug")
	Scanner = New(debugFile, log.DebugLevel).WithPrefix("scanner")
}

// New creates a timestamped logger writing to w at the given level
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger attached to ctx, or log.Default()
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
