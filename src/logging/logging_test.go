package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	baseLogger.SetOutput(&buf)
	defer baseLogger.SetOutput(os.Stderr)
	fn()
	return buf.String()
}

func TestLevelFiltering(t *testing.T) {
	SetLevel("warn")
	defer SetLevel("info")
	out := capture(t, func() {
		Debugf("hidden debug")
		Infof("hidden info")
		Warnf("visible warn")
		Errorf("visible error")
	})
	if strings.Contains(out, "hidden") {
		t.Fatalf("messages below the level leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] visible warn") || !strings.Contains(out, "[ERROR] visible error") {
		t.Fatalf("expected warn and error lines, got %q", out)
	}
}

func TestSetLevel_UnknownNameIgnored(t *testing.T) {
	SetLevel("info")
	SetLevel("chatty")
	if GetLevel() != LevelInfo {
		t.Fatalf("unknown level name changed the level to %v", GetLevel())
	}
	SetLevel(" WARNING ")
	defer SetLevel("info")
	if GetLevel() != LevelWarn {
		t.Fatalf("level names should be case and space insensitive, got %v", GetLevel())
	}
}

func TestPlainMessagePreservesPercent(t *testing.T) {
	SetLevel("info")
	// no args: literal % must not become a formatting artifact
	msg := "progress 50% done"
	out := capture(t, func() {
		Infof(msg)
	})
	if !strings.Contains(out, "50% done") {
		t.Fatalf("percent sign mangled: %q", out)
	}
	if strings.Contains(out, "%!") {
		t.Fatalf("formatting artifact in output: %q", out)
	}
}

func TestTimeTrack_LogsAtDebug(t *testing.T) {
	SetLevel("debug")
	defer SetLevel("info")
	out := capture(t, func() {
		TimeTrack(time.Now().Add(-5*time.Millisecond), "render")
	})
	if !strings.Contains(out, "[DEBUG] render took") {
		t.Fatalf("expected a debug timing line, got %q", out)
	}
}
