package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const logsDir = "logs"

type Config struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
	Console bool   `mapstructure:"console"`
}

// Logger wraps the process logger with the resources that must be flushed
// on shutdown.
type Logger struct {
	*logrus.Logger
	file    *AsyncFileWriter
	console *AsyncConsoleHook
}

// NewLogger writes JSON lines to <dir>/<role>.log and mirrors them to stdout
// when console output is on. LOG_LEVEL overrides the configured level.
func NewLogger(role string, cfg Config) (*Logger, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	l.SetLevel(parseLevel(cfg.Level))

	dir := cfg.Dir
	if dir == "" {
		dir = logsDir
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	fileWriter, err := NewAsyncFileWriter(filepath.Join(dir, role+".log"), 32*1024)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	l.SetOutput(fileWriter)

	out := &Logger{Logger: l, file: fileWriter}
	if cfg.Console {
		out.console = NewAsyncConsoleHook(os.Stdout, 4096)
		l.AddHook(out.console)
	}
	l.WithField("role", role).Info("logger initialized")
	return out, nil
}

func parseLevel(configured string) logrus.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		raw = configured
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (l *Logger) Close() {
	if l.console != nil {
		l.console.Close()
	}
	if l.file != nil {
		l.file.Close()
	}
}
