package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileName is the log file written inside the data directory
const FileName = "noted.log"

const permission = 0o664

// Logger is a zerolog logger with the file it writes to, if any
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New returns a logger writing to w at the named level. Unknown levels fall
// back to info.
func New(w io.Writer, level string) *Logger {
	return &Logger{Logger: build(w, level)}
}

// ToFile appends to dataDir/noted.log. The TUI uses this since it owns the
// terminal.
func ToFile(dataDir, level string) (*Logger, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dataDir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: build(zerolog.SyncWriter(f), level), file: f}, nil
}

// ToStderr writes human-readable output for the CLI and the MCP server
func ToStderr(level string) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}, level)
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func build(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
