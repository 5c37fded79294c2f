// Package logger sets up the per-run log file
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/arranger/internal/osutil"
)

const (
	// TimeFormat is the timestamp layout of every log line. The log viewer
	// relies on it splitting into exactly two whitespace separated fields.
	TimeFormat = "2006-01-02 15:04:05"

	fileTimeFormat = "2006-01-02T15-04-05"
	maxFileSizeMB  = 10
)

// FileName returns the log file name for a run started at t.
func FileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s.log", prefix, t.Format(fileTimeFormat))
}

// NewWriter returns a console writer without colours or caller info, so
// every line reads "date time LVL message key=value...".
func NewWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: TimeFormat,
	}
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(NewWriter(w)).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// Setup creates a fresh log file for this run in dir and installs it as the
// global logger. The returned closer flushes and closes the file.
func Setup(dir, prefix, level string) (io.Closer, error) {
	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:  filepath.Join(dir, FileName(prefix, time.Now())),
		MaxSize:   maxFileSizeMB,
		LocalTime: true,
	}

	l, err := New(file, level)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	log.Logger = l

	return file, nil
}

// Disable routes the global logger to nowhere. It is used by read-only
// commands so they do not create log files.
func Disable() {
	log.Logger = zerolog.Nop()
}
