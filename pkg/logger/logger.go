package logger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	logLevelNames = map[LogLevel]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	currentLevel = INFO
	sink         = &fileSink{}
	mu           sync.RWMutex

	// exit is swapped in tests so FATAL can be observed without leaving the process.
	exit = os.Exit
)

type fileSink struct {
	file         *os.File
	filePath     string
	maxSizeBytes int64
	maxAgeDays   int
	mu           sync.Mutex
}

type LogEntry struct {
	Level     string                 `json:"level"`
	Timestamp string                 `json:"timestamp"`
	Component string                 `json:"component,omitempty"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Caller    string                 `json:"caller,omitempty"`
}

func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

func GetLevel() LogLevel {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// ParseLevel maps a level name (case-insensitive) to a LogLevel.
func ParseLevel(name string) (LogLevel, bool) {
	for level, levelName := range logLevelNames {
		if strings.EqualFold(strings.TrimSpace(name), levelName) {
			return level, true
		}
	}
	return INFO, false
}

func EnableFileLogging(filePath string) error {
	return EnableFileLoggingWithRotation(filePath, 20, 3)
}

// EnableFileLoggingWithRotation mirrors every log line as JSON into filePath.
// The file is rotated once it would grow past maxSizeMB and rotated copies
// older than maxAgeDays are removed.
func EnableFileLoggingWithRotation(filePath string, maxSizeMB, maxAgeDays int) error {
	if maxSizeMB <= 0 {
		maxSizeMB = 20
	}
	if maxAgeDays <= 0 {
		maxAgeDays = 3
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file != nil {
		sink.file.Close()
	}
	sink.file = file
	sink.filePath = filePath
	sink.maxSizeBytes = int64(maxSizeMB) * 1024 * 1024
	sink.maxAgeDays = maxAgeDays
	if err := sink.cleanupOldLogFiles(); err != nil {
		log.Println("Failed to clean up old log files:", err)
	}
	return nil
}

func DisableFileLogging() {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file != nil {
		sink.file.Close()
		sink.file = nil
		sink.filePath = ""
		sink.maxSizeBytes = 0
		sink.maxAgeDays = 0
	}
}

func logMessage(level LogLevel, component string, message string, fields map[string]interface{}) {
	if level < GetLevel() {
		return
	}

	entry := LogEntry{
		Level:     logLevelNames[level],
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Component: component,
		Message:   message,
		Fields:    fields,
	}

	if pc, file, line, ok := runtime.Caller(2); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			entry.Caller = fmt.Sprintf("%s:%d (%s)", file, line, fn.Name())
		}
	}

	if jsonData, err := json.Marshal(entry); err == nil {
		if err := sink.writeLine(append(jsonData, '\n')); err != nil {
			log.Println("Failed to write file log:", err)
		}
	}

	var fieldStr string
	if len(fields) > 0 {
		fieldStr = " " + formatFields(fields)
	}

	log.Printf("[%s] [%s]%s %s%s",
		entry.Timestamp,
		entry.Level,
		formatComponent(component),
		message,
		fieldStr,
	)

	if level == FATAL {
		exit(1)
	}
}

func (s *fileSink) writeLine(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	if s.maxSizeBytes > 0 {
		if err := s.rotateIfNeeded(int64(len(line))); err != nil {
			return err
		}
	}

	_, err := s.file.Write(line)
	return err
}

// rotateIfNeeded moves the current file aside when nextWrite would push it
// past maxSizeBytes. An empty file is never rotated, so a single oversized
// line still lands somewhere.
func (s *fileSink) rotateIfNeeded(nextWrite int64) error {
	info, err := s.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 || info.Size()+nextWrite <= s.maxSizeBytes {
		return nil
	}

	if err := s.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(s.filePath, s.rotatedPath(time.Now())); err != nil {
		return err
	}
	file, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	s.file = file

	if err := s.cleanupOldLogFiles(); err != nil {
		log.Println("Failed to clean up old log files:", err)
	}
	return nil
}

// rotatedPath names a rotated copy discordbuttons.log.20260213-120000, adding
// a counter when a copy from the same second already exists.
func (s *fileSink) rotatedPath(now time.Time) string {
	stamp := now.UTC().Format("20060102-150405")
	path := s.filePath + "." + stamp
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = fmt.Sprintf("%s.%s-%d", s.filePath, stamp, n)
	}
}

// cleanupOldLogFiles removes rotated copies whose last write is older than
// maxAgeDays. The live file is never touched.
func (s *fileSink) cleanupOldLogFiles() error {
	if s.maxAgeDays <= 0 || s.filePath == "" {
		return nil
	}

	dir, base := filepath.Split(s.filePath)
	entries, err := os.ReadDir(filepath.Clean(dir))
	if err != nil {
		return err
	}

	cutoff := time.Now().AddDate(0, 0, -s.maxAgeDays)
	var failed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == base || !strings.HasPrefix(name, base+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			failed = append(failed, name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to remove rotated logs: %s", strings.Join(failed, ", "))
	}
	return nil
}

func formatComponent(component string) string {
	if component == "" {
		return ""
	}
	return fmt.Sprintf(" %s:", component)
}

func formatFields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

func DebugC(component string, message string) {
	logMessage(DEBUG, component, message, nil)
}

func DebugCF(component string, message string, fields map[string]interface{}) {
	logMessage(DEBUG, component, message, fields)
}

func InfoC(component string, message string) {
	logMessage(INFO, component, message, nil)
}

func InfoCF(component string, message string, fields map[string]interface{}) {
	logMessage(INFO, component, message, fields)
}

func WarnC(component string, message string) {
	logMessage(WARN, component, message, nil)
}

func WarnCF(component string, message string, fields map[string]interface{}) {
	logMessage(WARN, component, message, fields)
}

func ErrorC(component string, message string) {
	logMessage(ERROR, component, message, nil)
}

func ErrorCF(component string, message string, fields map[string]interface{}) {
	logMessage(ERROR, component, message, fields)
}

func FatalC(component string, message string) {
	logMessage(FATAL, component, message, nil)
}

func FatalCF(component string, message string, fields map[string]interface{}) {
	logMessage(FATAL, component, message, fields)
}
