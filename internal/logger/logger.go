// Package logger is the process-wide structured logger. Console output goes
// to stderr in human-readable form; the optional log file gets JSON with
// rotation.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const FileName = "drawnumber.log"

var (
	// Log is the global logger instance. Disabled until Init or InitWithFile.
	Log = zerolog.Nop()

	fileWriter  *lumberjack.Logger
	fileOnlyLog = zerolog.Nop()

	// interactive suppresses console logging while a TUI owns the terminal.
	interactive   bool
	interactiveMu sync.RWMutex
)

// FileConfig tunes the rotated log file.
type FileConfig struct {
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

func (c FileConfig) maxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

func (c FileConfig) maxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

func (c FileConfig) maxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func console(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
}

// Init sets up console-only logging on stderr.
func Init(debug bool) {
	Log = zerolog.New(console(os.Stderr)).Level(level(debug)).With().Timestamp().Logger()
}

// InitWithFile adds a rotated JSON log file under logsDir. An empty logsDir
// behaves like Init.
func InitWithFile(debug bool, logsDir string, cfg FileConfig) error {
	if logsDir == "" {
		Init(debug)
		return nil
	}
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, FileName),
		MaxSize:    cfg.maxSizeMB(),
		MaxAge:     cfg.maxAgeDays(),
		MaxBackups: cfg.maxBackups(),
		LocalTime:  true,
	}
	fileOnlyLog = zerolog.New(fileWriter).Level(level(debug)).With().Timestamp().Logger()

	multi := io.MultiWriter(console(os.Stderr), fileWriter)
	Log = zerolog.New(multi).Level(level(debug)).With().Timestamp().Logger()
	return nil
}

// CloseFileWriter flushes and closes the log file, if any.
func CloseFileWriter() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	fileOnlyLog = zerolog.Nop()
	return err
}

// FilePath returns the current log file, or "" when file logging is off.
func FilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// SetInteractiveMode toggles console suppression. The log file keeps
// receiving everything.
func SetInteractiveMode(enabled bool) {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()
	interactive = enabled
}

// InteractiveMode reports whether console logging is currently suppressed.
func InteractiveMode() bool {
	interactiveMu.RLock()
	defer interactiveMu.RUnlock()
	return interactive
}

func event(both, fileOnly func() *zerolog.Event) *zerolog.Event {
	if InteractiveMode() {
		return fileOnly()
	}
	return both()
}

func Debug() *zerolog.Event { return event(Log.Debug, fileOnlyLog.Debug) }
func Info() *zerolog.Event  { return event(Log.Info, fileOnlyLog.Info) }
func Warn() *zerolog.Event  { return event(Log.Warn, fileOnlyLog.Warn) }
func Error() *zerolog.Event { return event(Log.Error, fileOnlyLog.Error) }
