/*
Package logger 提供项目统一日志能力。

日志默认写到 stderr，交互菜单独占 stdout。
未调用 Init 前所有函数都是空操作，测试可用 Replace 安装 observer logger。
*/
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bookshop/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.Logger

// Init 按配置安装全局 logger
func Init(cfg *config.LogConfig, env string) error {
	sink, err := newSink(cfg)
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(newEncoder(cfg.Format, env), sink, level)
	log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}

// newEncoder 未指定格式时开发环境用 console，其余用 json
func newEncoder(format, env string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "" && (env == "dev" || env == "development") {
		format = "console"
	}
	if format == "console" {
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}

func newSink(cfg *config.LogConfig) (zapcore.WriteSyncer, error) {
	switch cfg.Output {
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		}), nil
	case "stdout":
		// 会与菜单输出交错，仅用于调试
		return zapcore.AddSync(os.Stdout), nil
	default:
		return zapcore.AddSync(os.Stderr), nil
	}
}

// Get 返回当前 logger，未初始化时返回 Nop logger
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Replace 替换全局 logger（测试中配合 zaptest/observer 使用）
func Replace(l *zap.Logger) {
	log = l
}

// Sync 刷新缓冲；终端上的 stderr 不支持 fsync，这类错误忽略
func Sync() error {
	if log == nil {
		return nil
	}
	if err := log.Sync(); err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "inappropriate ioctl for device") &&
			!strings.Contains(msg, "invalid argument") &&
			!strings.Contains(msg, "bad file descriptor") {
			return err
		}
	}
	return nil
}

func With(fields ...zap.Field) *zap.Logger {
	return Get().With(fields...)
}

// WithSessionID 绑定交互会话 ID
func WithSessionID(sessionID string) *zap.Logger {
	return With(zap.String("session_id", sessionID))
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}
