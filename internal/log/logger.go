// File: logger.go
// Title: Core Logger Implementation
// Description: Implements a structured logger with contextual fields, request
//              ID propagation, and text or JSON output. Used by the parser
//              for diagnostics and by the CLI for verbose mode.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial implementation with structured logging

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields holds structured key/value context for a log entry
type Fields map[string]interface{}

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	output    io.Writer
	name      string
	json      bool
	requestID string

	// Context fields that are added to all log entries
	contextFields Fields

	mutex sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Output io.Writer
	Name   string
	JSON   bool
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		json:          config.JSON,
		contextFields: make(Fields),
	}
	if config.Output == nil {
		logger.output = os.Stderr
	}
	return logger
}

// clone returns a copy of the logger sharing the output writer
func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}
	return &Logger{
		level:         l.level,
		output:        l.output,
		name:          l.name,
		json:          l.json,
		requestID:     l.requestID,
		contextFields: fields,
	}
}

// WithLevel returns a logger with the given minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithName returns a logger with the given name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a logger with a persistent field added to all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a logger with persistent fields added to all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithRequestID returns a logger carrying the given request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	clone := l.clone()
	clone.requestID = requestID
	return clone
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() Level {
	return l.level
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

func (l *Logger) log(level Level, message string, fields ...Fields) {
	if level < l.level {
		return
	}

	merged := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		merged[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}

	var line []byte
	if l.json {
		line = l.formatJSON(level, message, merged)
	} else {
		line = l.formatText(level, message, merged)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output.Write(line)
}

func (l *Logger) formatText(level Level, message string, fields Fields) []byte {
	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(level.ShortString())
	if l.name != "" {
		fmt.Fprintf(&b, " [%s]", l.name)
	}
	b.WriteString(" ")
	b.WriteString(message)
	if l.requestID != "" {
		fmt.Fprintf(&b, " requestId=%s", l.requestID)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	b.WriteString("\n")
	return []byte(b.String())
}

func (l *Logger) formatJSON(level Level, message string, fields Fields) []byte {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["time"] = time.Now().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["message"] = message
	if l.name != "" {
		entry["logger"] = l.name
	}
	if l.requestID != "" {
		entry["requestId"] = l.requestID
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return []byte(fmt.Sprintf(`{"level":"error","message":"log marshal failed: %v"}`+"\n", err))
	}
	return append(line, '\n')
}

var defaultLogger = New()

// GetDefault returns the package default logger
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault replaces the package default logger
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
