package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	for _, tc := range []struct {
		level, format string
		want          zapcore.Level
	}{
		{"info", "json", zapcore.InfoLevel},
		{"debug", "console", zapcore.DebugLevel},
		{"warn", "", zapcore.WarnLevel},
	} {
		logger, err := New(tc.level, tc.format)
		if err != nil {
			t.Fatalf("New(%q, %q): %v", tc.level, tc.format, err)
		}
		if !logger.Core().Enabled(tc.want) {
			t.Errorf("New(%q): level %v disabled", tc.level, tc.want)
		}
		if tc.want > zapcore.DebugLevel && logger.Core().Enabled(tc.want-1) {
			t.Errorf("New(%q): level %v unexpectedly enabled", tc.level, tc.want-1)
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Error("New accepted an unknown level")
	}
	if _, err := New("info", "xml"); err == nil {
		t.Error("New accepted an unknown format")
	}
}
