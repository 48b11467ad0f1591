package log

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Logger struct {
		l *zap.Logger
	}
	Level  = zapcore.Level
	Field  = zap.Field
	Config struct {
		Level   Level
		Format  string // "text" or "json"
		Filters string // zapfilter rules, for example "debug:analytics.* info:*"
	}
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

var defaultLogger = DevLogger()

// ParseLevel converts a level string ("debug", "info", ...) to a Level.
func ParseLevel(arg string) (Level, error) {
	return zapcore.ParseLevel(arg)
}

func DevLogger() *Logger {
	zl, _ := zap.NewDevelopment()
	return &Logger{l: zl}
}

// New builds the application logger according to cfg and installs it as the
// package default.
func New(cfg *Config) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), cfg.Level)
	if cfg.Filters != "" {
		if filtered, err := zapfilter.ParseRules(cfg.Filters); err == nil {
			core = zapfilter.NewFilteringCore(core, filtered)
		} else {
			fmt.Fprintf(os.Stderr, "invalid log filter rules %q: %v\n", cfg.Filters, err)
		}
	}
	defaultLogger = &Logger{l: zap.New(core)}
	return defaultLogger
}

func Default() *Logger { return defaultLogger }

func (l *Logger) Named(name string) *Logger { return &Logger{l: l.l.Named(name)} }

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }
func (l *Logger) Sync() error                       { return l.l.Sync() }

// package level convenience functions using the default logger

func Debug(msg string, fields ...Field) { defaultLogger.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { defaultLogger.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { defaultLogger.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { defaultLogger.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { defaultLogger.Fatal(msg, fields...) }

// field helpers so callers don't need to import zap themselves

func String(key, val string) Field              { return zap.String(key, val) }
func Int(key string, val int) Field             { return zap.Int(key, val) }
func Float64(key string, val float64) Field     { return zap.Float64(key, val) }
func Bool(key string, val bool) Field           { return zap.Bool(key, val) }
func Time(key string, val time.Time) Field      { return zap.Time(key, val) }
func Duration(k string, v time.Duration) Field  { return zap.Duration(k, v) }
func Any(key string, val interface{}) Field     { return zap.Any(key, val) }
func ErrorField(err error) Field                { return zap.Error(err) }

type ctxKey struct{}

func AddToContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// GetFromContext returns the logger stored in ctx or the default logger.
func GetFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return defaultLogger
}
