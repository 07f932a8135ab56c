package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"not-a-level", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := New(tt.level, FileOptions{})
			if l.GetLevel() != tt.want {
				t.Errorf("Expected level %v, got %v", tt.want, l.GetLevel())
			}
		})
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "devlog.log")

	l := New("info", FileOptions{Path: path})
	l.Info().Str("post_id", "42").Msg("written to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), `"post_id":"42"`) {
		t.Errorf("Expected JSON log line in file, got %q", data)
	}
}

func TestFileWriterDisabled(t *testing.T) {
	if w := fileWriter(FileOptions{}); w != nil {
		t.Error("Expected no file writer without a path")
	}
}
