package utils

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

// Logger defines a unified logging interface used across handlers and services
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// Structured logging with key-value pairs
	With(args ...any) Logger

	// Handler-specific methods for HTTP request logging
	LogRequest(method, path string, statusCode int, duration string, args ...any)
	LogError(err error, msg string, args ...any)
}

// SlogLogger implements Logger interface using slog
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a new logger wrapper around slog.Logger
func NewSlogLogger(logger *slog.Logger) Logger {
	return &SlogLogger{logger: logger}
}

// NewDefaultLogger creates a default logger using slog with JSON output
func NewDefaultLogger() Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return NewSlogLogger(logger)
}

// NewDevelopmentLogger creates a logger optimized for development with text output
func NewDevelopmentLogger() Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return NewSlogLogger(logger)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}

// LogRequest logs an HTTP request, escalating the level for error statuses.
func (l *SlogLogger) LogRequest(method, path string, statusCode int, duration string, args ...any) {
	level := slog.LevelInfo
	if statusCode >= 400 {
		level = slog.LevelWarn
	}
	if statusCode >= 500 {
		level = slog.LevelError
	}

	baseArgs := []any{
		"method", method,
		"path", path,
		"status_code", statusCode,
		"duration", duration,
	}
	l.logger.Log(context.Background(), level, "HTTP Request", append(baseArgs, args...)...)
}

func (l *SlogLogger) LogError(err error, msg string, args ...any) {
	l.logger.Error(msg, append([]any{"error", err}, args...)...)
}

// Slog returns the underlying slog.Logger for components that take it directly
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// LoggerMiddleware creates a Gin middleware for request logging
func LoggerMiddleware(logger Logger) func(*gin.Context) {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logger.LogRequest(
			param.Method,
			param.Path,
			param.StatusCode,
			param.Latency.String(),
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
		)
		return ""
	})
}
