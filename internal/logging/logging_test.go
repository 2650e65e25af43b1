package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in, zerolog.InfoLevel); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "warn")
	log.Info().Msg("hidden")
	log.Error().Str("key", "vibeTasks").Msg("save failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	if !strings.Contains(out, `"key":"vibeTasks"`) || !strings.Contains(out, `"app":"vibetask"`) {
		t.Fatalf("unexpected record: %s", out)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vibetask.log")
	log, closeFn, err := New(Config{Level: "info", File: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info().Msg("tasks loaded")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "tasks loaded") {
		t.Fatalf("log file missing record: %s", raw)
	}
}

func TestNewWithoutFileIsNop(t *testing.T) {
	log, closeFn, err := New(Config{})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got %s", log.GetLevel())
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
