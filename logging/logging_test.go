package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"info", false, false},
		{"debug", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(zapcore.AddSync(&buf), tc.debug)
			log.Debug("collected")
			log.Info("level complete")
			_ = log.Sync()

			out := buf.String()
			if !strings.Contains(out, "level complete") {
				t.Fatalf("expected info line, got %q", out)
			}
			if got := strings.Contains(out, "collected"); got != tc.wantDebug {
				t.Fatalf("debug line present=%v, want %v: %q", got, tc.wantDebug, out)
			}
		})
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log := New(Options{File: path})
	log.Info("reloading scene")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "reloading scene") {
		t.Fatalf("expected message in file, got %q", data)
	}
}
