package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the logging section of the CLI configuration.
// Entries always go to the console writer. When Enabled is set they are
// also written to a rotated file at Path.
// Config 是 CLI 配置中的日志部分。控制台日志始终写入控制台；
// 启用文件日志时会额外写入轮转文件。
type Config struct {
	Enabled    bool   `yaml:"enabled"`     // 是否额外写入日志文件
	Level      string `yaml:"level"`       // debug, info, warn, error
	Path       string `yaml:"path"`        // 日志文件路径
	MaxSize    int    `yaml:"max_size"`    // MB
	MaxBackups int    `yaml:"max_backups"` // 保留的旧文件数量
	MaxAge     int    `yaml:"max_age"`     // 天
	Compress   bool   `yaml:"compress"`
}

type contextKey struct{}

var globalLogger *zap.SugaredLogger

// Init builds the global logger on stderr, so stdout carries only command output.
// Init 在 stderr 上构建全局日志记录器，stdout 只输出命令结果。
func Init(cfg Config) {
	InitWithWriter(cfg, os.Stderr)
}

// InitWithWriter is Init with an explicit console writer.
// InitWithWriter 与 Init 相同，但可指定控制台输出。
func InitWithWriter(cfg Config, console io.Writer) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	level := ParseLevel(cfg.Level)

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(console), level)}
	rotator, err := cfg.rotator()
	if rotator != nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	globalLogger = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	if err != nil {
		// 无法创建日志目录时仅输出到控制台
		globalLogger.Warnf("log file disabled: %v", err)
	}
}

// rotator returns the lumberjack writer for cfg.Path, or nil when file logging is off.
func (c Config) rotator() (*lumberjack.Logger, error) {
	if !c.Enabled || c.Path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}, nil
}

// ParseLevel maps a config level name to a zap level, defaulting to warn.
// ParseLevel 将配置中的日志级别映射为 zap 级别，默认 warn。
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Sync flushes buffered entries. Errors from syncing a terminal are expected.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// L returns the global logger, or a no-op logger before Init.
// L 返回全局日志记录器，Init 之前返回空操作记录器。
func L() *zap.SugaredLogger {
	if globalLogger == nil {
		return zap.NewNop().Sugar()
	}
	return globalLogger
}

// Get returns the logger carried by ctx, falling back to L.
// Get 返回 ctx 中的日志记录器，没有时回退到 L。
func Get(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return L()
}

// WithContext attaches l to ctx for the transport and commands to pick up.
// WithContext 将 l 附加到 ctx，供传输层和命令读取。
func WithContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}
