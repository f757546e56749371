package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileLoggingWritesJSONLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "discordbuttons.log")
	if err := EnableFileLogging(logPath); err != nil {
		t.Fatalf("enable file logging: %v", err)
	}
	defer DisableFileLogging()

	InfoCF("buttons", "message sent", map[string]interface{}{
		FieldChannelID: "123",
		FieldRows:      2,
	})

	f, err := os.Open(logPath)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected one log line")
	}
	var entry LogEntry
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry.Level != "INFO" || entry.Component != "buttons" || entry.Message != "message sent" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Fields[FieldChannelID] != "123" {
		t.Fatalf("channel_id mismatch: %v", entry.Fields[FieldChannelID])
	}
}

func TestLevelFiltersLowerMessages(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "filtered.log")
	if err := EnableFileLogging(logPath); err != nil {
		t.Fatalf("enable file logging: %v", err)
	}
	defer DisableFileLogging()

	prev := GetLevel()
	SetLevel(WARN)
	defer SetLevel(prev)

	DebugC("buttons", "dropped")
	InfoC("buttons", "dropped")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected no output below WARN, got %q", data)
	}
}

func TestFatalExitsWithCodeOne(t *testing.T) {
	var code int
	prev := exit
	exit = func(c int) { code = c }
	defer func() { exit = prev }()

	FatalCF("buttons", "gateway open failed", map[string]interface{}{
		FieldError: "boom",
	})

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]LogLevel{
		"debug": DEBUG,
		"INFO":  INFO,
		" Warn": WARN,
		"error": ERROR,
	}
	for name, want := range cases {
		got, ok := ParseLevel(name)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", name, got, ok, want)
		}
	}
	if _, ok := ParseLevel("verbose"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}

func TestRotationMovesFullFileAsideAndPrunesExpiredCopies(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "discordbuttons.log")
	if err := EnableFileLoggingWithRotation(logPath, 1, 3); err != nil {
		t.Fatalf("enable file logging: %v", err)
	}
	defer DisableFileLogging()

	sink.mu.Lock()
	sink.maxSizeBytes = 64
	sink.mu.Unlock()

	expired := logPath + ".20000101-000000"
	if err := os.WriteFile(expired, []byte("old\n"), 0644); err != nil {
		t.Fatalf("write expired copy: %v", err)
	}
	old := time.Now().AddDate(0, 0, -10)
	if err := os.Chtimes(expired, old, old); err != nil {
		t.Fatalf("age expired copy: %v", err)
	}
	recent := logPath + ".20990101-000000"
	if err := os.WriteFile(recent, []byte("recent\n"), 0644); err != nil {
		t.Fatalf("write recent copy: %v", err)
	}

	InfoC("buttons", "first line is larger than the rotation threshold on its own")
	InfoC("buttons", "second line")

	if _, err := os.Stat(expired); !os.IsNotExist(err) {
		t.Fatalf("expired rotated copy still present, stat err = %v", err)
	}
	if _, err := os.Stat(recent); err != nil {
		t.Fatalf("recent rotated copy removed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read log dir: %v", err)
	}
	var rotated []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "discordbuttons.log.") && e.Name() != filepath.Base(recent) {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 {
		t.Fatalf("expected one new rotated copy, got %v", rotated)
	}

	data, err := os.ReadFile(filepath.Join(dir, rotated[0]))
	if err != nil || !strings.Contains(string(data), "first line") {
		t.Fatalf("rotated copy should hold the first line: %q, %v", data, err)
	}
	data, err = os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read live log: %v", err)
	}
	if strings.Contains(string(data), "first line") || !strings.Contains(string(data), "second line") {
		t.Fatalf("live log should hold only the second line: %q", data)
	}
}
