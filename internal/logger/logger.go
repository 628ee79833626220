package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation budget for a low-traffic reporting API: the request-log volume
// is small, so keep files short-lived rather than large.
const (
	maxSizeMB  = 20
	maxBackups = 7
	maxAgeDays = 14
)

// SetupLogger builds the process logger. Release mode logs JSON at info
// level; every other mode keeps the console core and mirrors debug output
// into the rotated file.
func SetupLogger(logFile, mode string) (*zap.Logger, error) {
	if mode == "release" {
		config := zap.NewProductionConfig()
		config.DisableCaller = true
		config.DisableStacktrace = true
		return config.Build(teeFileCore(logFile, zap.NewProductionEncoderConfig(), zap.InfoLevel))
	}

	config := zap.NewDevelopmentConfig()
	return config.Build(teeFileCore(logFile, zap.NewDevelopmentEncoderConfig(), zap.DebugLevel))
}

func teeFileCore(logFile string, encoderConfig zapcore.EncoderConfig, level zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			rotateWriteSyncer(logFile),
			level,
		)
		return zapcore.NewTee(core, fileCore)
	})
}

func rotateWriteSyncer(logFile string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	})
}
