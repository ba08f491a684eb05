// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/helper/gc"
)

// Level is the verbosity of diagnostic output.
// Higher levels include everything the lower levels print.
type Level int32

const (
	// LevelWarn prints warnings only. This is the default.
	LevelWarn Level = iota
	// LevelInfo adds progress information such as the sort key in use.
	LevelInfo
	// LevelDebug adds per-file details.
	LevelDebug
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int32(l))
	}
}

// LevelFromCount maps a repeated -l flag count to a [Level].
// Zero selects warnings, one selects info and anything above selects debug.
func LevelFromCount(n int) Level {
	switch {
	case n <= 0:
		return LevelWarn
	case n == 1:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// Printf and Println are never filtered. Warnf, Infof and Debugf are
// dropped when the logger's level is below the message level.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Warnf logs a formatted message at warning level.
	Warnf(format string, v ...any)
	// Infof logs a formatted message at info level.
	Infof(format string, v ...any)
	// Debugf logs a formatted message at debug level.
	Debugf(format string, v ...any)
	// SetLevel changes the verbosity.
	SetLevel(l Level)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct {
	logger *log.Logger
	level  atomic.Int32
}

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
// Stdout is left to the report itself.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf logs a warning.
func (c *CLILogger) Warnf(format string, v ...any) { c.logf(LevelWarn, format, v...) }

// Infof logs an informational message.
func (c *CLILogger) Infof(format string, v ...any) { c.logf(LevelInfo, format, v...) }

// Debugf logs a debug message.
func (c *CLILogger) Debugf(format string, v ...any) { c.logf(LevelDebug, format, v...) }

// SetLevel changes the verbosity of the CLI logger.
func (c *CLILogger) SetLevel(l Level) { c.level.Store(int32(l)) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.logger.SetOutput(w)
}

func (c *CLILogger) logf(l Level, format string, v ...any) {
	if Level(c.level.Load()) < l {
		return
	}
	c.logger.Printf("%s: %s", l, fmt.Sprintf(format, v...))
}

// JSONLogger implements Logger with one JSON object per line.
// Each entry carries "level" and "message" keys. Entries are encoded into a
// pooled buffer and written with a single Write call.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	level  atomic.Int32
}

// NewJSONLogger creates a new structured logger.
// A nil writer discards everything.
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{writer: writer}
}

// Printf formats and logs a structured message at info level regardless of the configured level.
func (j *JSONLogger) Printf(format string, v ...any) { j.write(LevelInfo, fmt.Sprintf(format, v...)) }

// Println logs a structured message at info level regardless of the configured level.
func (j *JSONLogger) Println(v ...any) { j.write(LevelInfo, fmt.Sprint(v...)) }

// Warnf logs a warning entry.
func (j *JSONLogger) Warnf(format string, v ...any) { j.logf(LevelWarn, format, v...) }

// Infof logs an info entry.
func (j *JSONLogger) Infof(format string, v ...any) { j.logf(LevelInfo, format, v...) }

// Debugf logs a debug entry.
func (j *JSONLogger) Debugf(format string, v ...any) { j.logf(LevelDebug, format, v...) }

// SetLevel changes the verbosity of the JSON logger.
func (j *JSONLogger) SetLevel(l Level) { j.level.Store(int32(l)) }

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

func (j *JSONLogger) logf(l Level, format string, v ...any) {
	if Level(j.level.Load()) < l {
		return
	}
	j.write(l, fmt.Sprintf(format, v...))
}

func (j *JSONLogger) write(l Level, msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	entry := struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}{Level: l.String(), Message: msg}

	// Encode appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry); err != nil {
		return
	}

	j.mu.Lock()
	j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}
