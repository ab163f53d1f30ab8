package utils

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"roomly/config"
)

func TestLogLevel(t *testing.T) {
	orig := config.AppConfig.LogLevel
	defer func() { config.AppConfig.LogLevel = orig }()

	cases := []struct {
		configured string
		fallback   zapcore.Level
		want       zapcore.Level
	}{
		{"", zap.InfoLevel, zap.InfoLevel},
		{"warn", zap.InfoLevel, zap.WarnLevel},
		{"debug", zap.InfoLevel, zap.DebugLevel},
		{"error", zap.DebugLevel, zap.ErrorLevel},
		{"verbose", zap.InfoLevel, zap.InfoLevel}, // not a zap level
	}
	for _, tc := range cases {
		config.AppConfig.LogLevel = tc.configured
		if got := logLevel(tc.fallback); got != tc.want {
			t.Errorf("logLevel with LOG_LEVEL=%q fallback %s: got %s, want %s",
				tc.configured, tc.fallback, got, tc.want)
		}
	}
}
