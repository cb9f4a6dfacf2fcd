package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// ShutdownFunc flushes and releases a telemetry provider
type ShutdownFunc func(context.Context) error

// SetupLogging makes a text slog handler writing to w at level the default
// logger. With console set, the package loggers are exported to w through
// an OpenTelemetry logger provider as well.
func SetupLogging(w io.Writer, level slog.Level, console bool) (ShutdownFunc, error) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))

	if !console {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	global.SetLoggerProvider(provider)

	return provider.Shutdown, nil
}
