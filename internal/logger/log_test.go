package logger

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/0929smj/chun2/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestOutputFallsBackToStdout(t *testing.T) {
	w := output(config.LogConfig{Console: false, File: ""})
	if w != os.Stdout {
		t.Fatalf("no sinks configured must fall back to stdout, got %T", w)
	}
}

func TestOutputSingleSinkIsDirect(t *testing.T) {
	w := output(config.LogConfig{Console: true})
	if w != os.Stdout {
		t.Fatalf("console-only config must write stdout directly, got %T", w)
	}
}

func TestOutputFansOut(t *testing.T) {
	w := output(config.LogConfig{Console: true, File: t.TempDir() + "/app.log"})
	if w == io.Writer(os.Stdout) {
		t.Fatal("console+file config must fan out, got bare stdout")
	}
}
