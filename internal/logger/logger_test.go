package logger

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "euclid.log")
	log := New("debug", DefaultFileConfig(path))
	log.Info("hello")
	if err := log.Sync(); err != nil {
		// Sync on stderr may fail on some platforms; only the file sink
		// matters here.
		t.Logf("sync: %v", err)
	}
}
