package logging

import (
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"os"
)

const (
	RequestIDKey = "request_id"
)

var (
	level  = new(slog.LevelVar)
	output io.Writer = os.Stdout
)

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built from now on, as well as those already handed out
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput redirects loggers built after the call. Meant for tests and for commands that keep stdout for results
func SetOutput(w io.Writer) {
	output = w
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	logger = &Logger{Logger: logger.With("path", ctx.Request.URL.Path)}
	if requestID := ctx.GetString(RequestIDKey); requestID != "" {
		logger = &Logger{Logger: logger.With(RequestIDKey, requestID)}
	}
	return logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
