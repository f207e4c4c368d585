package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogger_WritesToOut(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)
	l.SetRunID("run-1")
	l.Logf("saved %d slides", 8)
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, `msg="saved 8 slides"`) {
		t.Errorf("missing message in %q", out)
	}
	if !strings.Contains(out, "run=run-1") {
		t.Errorf("missing run id in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug record written without debug enabled")
	}
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, true)
	l.Debug("shape", "n", 3)
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Errorf("expected debug record, got %q", buf.String())
	}
}

func TestLogger_InitNumbersFiles(t *testing.T) {
	dir := t.TempDir()
	date := time.Now().Format("2006-01-02")

	for i := 1; i <= 2; i++ {
		l := NewLogger(nil, false)
		if err := l.Init(dir); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		want := filepath.Join(dir, "yadeck_"+date+"_"+string(rune('0'+i))+".log")
		if got := l.FilePath(); got != want {
			t.Errorf("run %d: expected %s, got %s", i, want, got)
		}
		l.Error("boom", errors.New("bad"))
		l.Close()

		data, err := os.ReadFile(want)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(data), "err=bad") || !strings.Contains(string(data), "log closed") {
			t.Errorf("unexpected log content %q", data)
		}
	}
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	l := NewLogger(nil, false)
	l.Close()
	l.Log("after close")
	if l.FilePath() != "" {
		t.Error("expected no file")
	}
}
