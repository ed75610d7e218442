// SPDX-License-Identifier: MIT
// Package: peelmis/logging
//
// Package logging builds the process zap logger and carries it in a context.
// Library packages never construct loggers; they extract one with
// ctxzap.Extract and fall back to a no-op logger when none is attached.

package logging

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Option mutates the zap configuration before the logger is built.
type Option func(*zap.Config)

// WithLogLevel sets the minimum level. Unparseable levels fall back to debug.
func WithLogLevel(level string) Option {
	return func(c *zap.Config) {
		ll := zapcore.DebugLevel
		_ = ll.Set(level)
		c.Level.SetLevel(ll)
	}
}

// WithLogFormat selects the encoder; anything but "console" means json.
func WithLogFormat(format string) Option {
	return func(c *zap.Config) {
		switch format {
		case LogFormatConsole:
			c.Encoding = LogFormatConsole
			c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		default:
			c.Encoding = LogFormatJSON
		}
	}
}

// WithOutputPaths replaces the sinks ("stdout", "stderr" or file paths).
func WithOutputPaths(paths ...string) Option {
	return func(c *zap.Config) {
		if len(paths) > 0 {
			c.OutputPaths = append([]string(nil), paths...)
		}
	}
}

// Init creates a new zap logger and attaches it to the provided context.
// Logs go to stderr by default so stdout stays free for reports.
func Init(ctx context.Context, opts ...Option) (context.Context, error) {
	zc := zap.NewProductionConfig()
	zc.Sampling = nil
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}

	for _, opt := range opts {
		opt(&zc)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	zap.ReplaceGlobals(l)

	l.Debug("logger created", zap.String("log_level", zc.Level.String()), zap.String("log_format", zc.Encoding))

	return ctxzap.ToContext(ctx, l), nil
}
