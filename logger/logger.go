package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger handles run logging
type Logger struct {
	out   io.Writer
	file  *os.File
	level slog.Level
	runID string
	log   *slog.Logger
	mu    sync.Mutex
}

// NewLogger creates a Logger writing text records to out.
func NewLogger(out io.Writer, debug bool) *Logger {
	l := &Logger{out: out, level: slog.LevelInfo}
	if debug {
		l.level = slog.LevelDebug
	}
	l.rebuild()
	return l
}

// Init additionally writes to a numbered daily file in logDir.
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("yadeck_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("yadeck_%s_%d.log", dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = f
	l.rebuild()
	l.log.Info("log started", "file", filename)
	return nil
}

// SetRunID tags every following record with the run id.
func (l *Logger) SetRunID(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runID = id
	l.rebuild()
}

// FilePath returns the current log file, or "" when logging to out only.
func (l *Logger) FilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Log writes an info message
func (l *Logger) Log(message string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info(message, args...)
}

// Logf writes a formatted info message
func (l *Logger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info(fmt.Sprintf(format, args...))
}

// Debug writes a message only when debug logging is on.
func (l *Logger) Debug(message string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Debug(message, args...)
}

// Error writes an error record.
func (l *Logger) Error(message string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Error(message, "err", err)
}

// Close closes the log file
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.log.Info("log closed")
		l.file.Close()
		l.file = nil
		l.rebuild()
	}
}

// rebuild must be called with mu held (or before l is shared).
func (l *Logger) rebuild() {
	var w io.Writer = io.Discard
	switch {
	case l.out != nil && l.file != nil:
		w = io.MultiWriter(l.out, l.file)
	case l.out != nil:
		w = l.out
	case l.file != nil:
		w = l.file
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level}))
	if l.runID != "" {
		log = log.With("run", l.runID)
	}
	l.log = log
}
