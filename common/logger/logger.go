package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init builds the process-wide logger and installs it with
// zap.ReplaceGlobals. Output goes to stdout and to logPath (the
// directory is created if needed). Repeated calls are no-ops; every
// process calls Init exactly once from main.
func Init(serviceName, logPath string) (*zap.Logger, error) {
	initOnce.Do(func() {
		initErr = buildGlobal(serviceName, logPath)
	})
	if initErr != nil {
		return nil, initErr
	}
	return zap.L(), nil
}

func buildGlobal(serviceName, logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := parseLevel(os.Getenv("LOG_LEVEL"))
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), level),
	)

	log := zap.New(core).With(zap.String("service", serviceName))
	zap.ReplaceGlobals(log)
	return nil
}

// Component returns a child logger whose name renders as a [name]
// prefix on every entry.
func Component(name string) *zap.Logger {
	return zap.L().Named(name)
}

// Section logs the banner the scraper prints at the start of a scan.
func Section(log *zap.Logger, section string) {
	line := strings.Repeat("#", 50)
	log.Info("\n" + line + "\n#  " + section + "\n" + line)
}

func parseLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
