package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Settings stores config for logger
type Settings struct {
	Path       string `yaml:"path"`        // 日志目录, 为空时只输出到标准输出
	Name       string `yaml:"name"`        // 日志文件名前缀
	Ext        string `yaml:"ext"`         // 日志文件扩展名
	TimeFormat string `yaml:"time-format"` // 日志文件名中的日期格式
	Level      string `yaml:"level"`       // debug, info, warn, error
}

var (
	mu      sync.Mutex
	logFile *os.File
	level   = new(slog.LevelVar)
	logger  = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
)

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes the package logger. Output goes to stdout, and also to
// <Path>/<Name>-<date>.<Ext> when Path is set.
func Setup(settings *Settings) error {
	mu.Lock()
	defer mu.Unlock()

	level.Set(ParseLevel(settings.Level))
	var w io.Writer = os.Stdout
	if settings.Path != "" {
		if err := os.MkdirAll(settings.Path, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		fileName := fmt.Sprintf("%s-%s.%s", settings.Name, time.Now().Format(settings.TimeFormat), settings.Ext)
		f, err := os.OpenFile(filepath.Join(settings.Path, fileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		if logFile != nil {
			_ = logFile.Close()
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// SetOutput redirects the logger to w, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel changes the minimum level that is written.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Enabled reports whether messages at l are written.
func Enabled(l slog.Level) bool {
	return current().Enabled(context.Background(), l)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func output(l slog.Level, v ...any) {
	lg := current()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func Debug(v ...any) {
	output(slog.LevelDebug, v...)
}

func Info(v ...any) {
	output(slog.LevelInfo, v...)
}

func Warn(v ...any) {
	output(slog.LevelWarn, v...)
}

func Error(v ...any) {
	output(slog.LevelError, v...)
}

// Fatal logs at error level and exits the process.
func Fatal(v ...any) {
	output(slog.LevelError, v...)
	os.Exit(1)
}
