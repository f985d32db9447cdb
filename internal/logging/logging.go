package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
)

// FilePrefix starts the name of every log file written by Setup
const FilePrefix = "a3cfg_"

// Setup configures the global slog logger.
// Console output goes to stderr so command output on stdout stays clean.
// If logOutputDir is non-empty, logs are also written to a timestamped file in that directory
func Setup(levelStr string, logOutputDir string) error {
	logger, path, err := New(os.Stderr, levelStr, logOutputDir)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if path != "" {
		fmt.Fprintf(os.Stderr, "Logging to file: %s\n", path)
	}
	return nil
}

// New builds the logger Setup installs, writing console output to w.
// It returns the path of the log file, or "" when logOutputDir is empty.
func New(w io.Writer, levelStr string, logOutputDir string) (*slog.Logger, string, error) {
	level := parseLogLevel(levelStr)

	consoleHandler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})

	if logOutputDir == "" {
		return slog.New(consoleHandler), "", nil
	}

	logDir := os.ExpandEnv(logOutputDir)

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create log output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	logFilePath := filepath.Join(logDir, FilePrefix+timestamp+".log")

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create log file: %w", err)
	}

	fileHandler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level})

	return slog.New(slogmulti.Fanout(consoleHandler, fileHandler)), logFilePath, nil
}

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "trace", "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
