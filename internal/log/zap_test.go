package log

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("resolved", Int("length", 12))
	logger.WithFields(String("component", "builder")).Info("built", Int("free_fill", 8))
	logger.Warn("warn")
	logger.Error("error", Err(nil))

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	if entries[0].Level != zapcore.DebugLevel || entries[0].Message != "resolved" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if got := entries[0].ContextMap()["length"]; got != int64(12) {
		t.Errorf("length field = %v (%T)", got, got)
	}

	ctx := entries[1].ContextMap()
	if ctx["component"] != "builder" {
		t.Errorf("persistent field missing: %v", ctx)
	}
	if ctx["free_fill"] != int64(8) {
		t.Errorf("call field missing: %v", ctx)
	}
}

func TestNewZapLoggerNil(t *testing.T) {
	if _, ok := NewZapLogger(nil).(*nullLogger); !ok {
		t.Error("NewZapLogger(nil) should return null logger")
	}
}

func TestNewConsoleZap(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(NewConsoleZap(&buf, LevelInfo, false))

	logger.Debug("hidden")
	logger.Info("visible", String("key", "value"))

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(output, "INFO") || !strings.Contains(output, "visible") {
		t.Errorf("info entry missing: %q", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("colour codes should be absent when color is false")
	}
}

func TestZapLevel(t *testing.T) {
	tests := map[Level]zapcore.Level{
		LevelDebug: zapcore.DebugLevel,
		LevelInfo:  zapcore.InfoLevel,
		LevelWarn:  zapcore.WarnLevel,
		LevelError: zapcore.ErrorLevel,
		Level(42):  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := zapLevel(in); got != want {
			t.Errorf("zapLevel(%v) = %v, want %v", in, got, want)
		}
	}
}
