// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level  ObservabilityLevel
	logger *log.Logger
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// String returns the name accepted by ParseLevel.
func (l ObservabilityLevel) String() string {
	switch l {
	case ObservabilityOff:
		return "off"
	case ObservabilityDebug:
		return "debug"
	default:
		return "info"
	}
}

// ParseLevel converts a log level name to an observability level. "warn"
// and "error" keep the logger on but hide timing output.
func ParseLevel(name string) (ObservabilityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off", "none", "quiet":
		return ObservabilityOff, nil
	case "", "info", "warn", "warning", "error":
		return ObservabilityMetrics, nil
	case "debug":
		return ObservabilityDebug, nil
	default:
		return ObservabilityOff, fmt.Errorf("unknown log level %q", name)
	}
}

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	if level == ObservabilityOff {
		writer = io.Discard
	}

	logLevel := log.InfoLevel
	if level == ObservabilityDebug {
		logLevel = log.DebugLevel
	}

	return &StandardObserver{
		level: level,
		logger: log.NewWithOptions(writer, log.Options{
			Level:           logLevel,
			Prefix:          "sunder",
			TimeFormat:      time.RFC3339,
			ReportTimestamp: level == ObservabilityDebug,
		}),
	}
}

// Level returns the configured level.
func (o *StandardObserver) Level() ObservabilityLevel {
	if o == nil {
		return ObservabilityOff
	}
	return o.level
}

// Logger returns the underlying structured logger. A nil observer yields a
// logger that discards everything.
func (o *StandardObserver) Logger() *log.Logger {
	if o == nil {
		return log.New(io.Discard)
	}
	return o.logger
}

// StartTiming returns a function to complete timing. The completion logs
// the duration and the supplied key/value pairs at debug level.
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, keyvals ...interface{}) {
	if o == nil || o.level != ObservabilityDebug {
		return func(bool, ...interface{}) {}
	}

	start := time.Now()

	return func(success bool, keyvals ...interface{}) {
		fields := append([]interface{}{
			"component", component,
			"duration", time.Since(start),
			"success", success,
		}, keyvals...)
		o.logger.Debug(operation, fields...)
	}
}
