package helper

import (
	"sync"

	"github.com/sjzsdu/vpm/share"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   *zap.Logger
	loggerMu sync.Mutex
)

// Logger 返回全局日志器；调试模式下使用开发配置
func Logger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger == nil {
		logger = newLogger(share.IsDebug(), "warn")
	}
	return logger
}

// InitLogger 按调试开关和日志级别重建全局日志器
func InitLogger(debug bool, level string) *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger != nil {
		_ = logger.Sync()
	}
	logger = newLogger(debug, level)
	return logger
}

func newLogger(debug bool, level string) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Sampling = nil
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			lvl = zapcore.WarnLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
