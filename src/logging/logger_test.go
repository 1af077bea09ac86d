package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel("warn")
	defer SetLevel("info")

	Infof("not shown")
	Warnf("shown %d", 1)
	out := buf.String()
	if strings.Contains(out, "not shown") {
		t.Fatalf("info leaked through warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown 1") {
		t.Fatalf("warn message missing: %s", out)
	}
}

func TestPlainMessageWithPercent(t *testing.T) {
	buf := capture(t)
	SetLevel("info")

	// A file name with a literal % must not be re-interpreted by fmt.
	Infof("skipping problem_50%discount.json")
	out := buf.String()
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("fmt artifact in output: %s", out)
	}
	if !strings.Contains(out, "problem_50%discount.json") {
		t.Fatalf("message mangled: %s", out)
	}
}

func TestUnknownLevelIgnored(t *testing.T) {
	SetLevel("info")
	SetLevel("chatty")
	if getLevel() != LevelInfo {
		t.Fatalf("unknown level changed state: %v", getLevel())
	}
}
