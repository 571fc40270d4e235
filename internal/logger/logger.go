package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/eatforce/internal/constants"
)

// Logger is the process-wide logger. It stays nil until Init runs, and every helper in
// this package tolerates that so library code can log unconditionally.
var Logger *log.Logger

// Config holds logger configuration
type Config struct {
	Debug     bool
	ConfigDir string
}

// Init points the global logger at a rotating file under ConfigDir/logs. Debug mode
// also mirrors output to stderr and records the caller.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.ConfigDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.AppName+".log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	var writer io.Writer = fileWriter
	level := log.WarnLevel
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
		level = log.DebugLevel
	}

	Logger = newLogger(writer, level, cfg.Debug)
	return nil
}

// UseWriter replaces the global logger with one writing to w. Tests use it to capture
// output.
func UseWriter(w io.Writer, level log.Level) {
	Logger = newLogger(w, level, false)
}

func newLogger(w io.Writer, level log.Level, reportCaller bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    reportCaller,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
