package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init points the default slog logger at the log file at path.
// Uses text format for human readability. The returned closer releases the file.
func Init(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := New(file, level)
	slog.SetDefault(logger)

	// Redirect standard log package output (used by goose) to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return logger, file, nil
}

// New builds a text logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard is a logger that drops everything, handy in tests
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}
