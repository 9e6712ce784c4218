package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord represents a captured log record for testing
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler is a slog.Handler that records every log call so tests
// can assert on emitted diagnostics. Handlers derived via WithAttrs share
// the same record buffer and mutex.
type CaptureHandler struct {
	mu      *sync.Mutex
	records *[]LogRecord
	preset  []slog.Attr
	t       *testing.T
}

// NewCaptureHandler creates a new capture handler for testing
func NewCaptureHandler(t *testing.T) *CaptureHandler {
	records := make([]LogRecord, 0)
	return &CaptureHandler{
		mu:      &sync.Mutex{},
		records: &records,
		t:       t,
	}
}

// Handle implements slog.Handler
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	attrs := make(map[string]any)
	for _, a := range h.preset {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	*h.records = append(*h.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})

	// Mirror to test output for debugging
	if h.t != nil {
		h.t.Logf("[%s] %s %v", r.Level, r.Message, attrs)
	}

	return nil
}

// Enabled implements slog.Handler. All levels are captured in tests.
func (h *CaptureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. The derived handler shares the record
// buffer so assertions see logs from child loggers too.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	preset := make([]slog.Attr, 0, len(h.preset)+len(attrs))
	preset = append(preset, h.preset...)
	preset = append(preset, attrs...)
	return &CaptureHandler{
		mu:      h.mu,
		records: h.records,
		preset:  preset,
		t:       h.t,
	}
}

// WithGroup implements slog.Handler. Groups are flattened in tests.
func (h *CaptureHandler) WithGroup(name string) slog.Handler {
	return h
}

// Records returns a copy of all captured log records
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := make([]LogRecord, len(*h.records))
	copy(records, *h.records)
	return records
}

// RecordsByLevel returns captured records filtered by level
func (h *CaptureHandler) RecordsByLevel(level slog.Level) []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	var filtered []LogRecord
	for _, r := range *h.records {
		if r.Level == level {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ContainsAttr checks if any captured record carries the given attribute
func (h *CaptureHandler) ContainsAttr(key string, value any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, r := range *h.records {
		if val, ok := r.Attrs[key]; ok && val == value {
			return true
		}
	}
	return false
}

// Count returns the number of captured records
func (h *CaptureHandler) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(*h.records)
}

// NewTestLogger creates a logger with a capture handler for testing
func NewTestLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	handler := NewCaptureHandler(t)
	logger := slog.New(handler)
	return logger, handler
}

// AssertLogContains checks that a record at the given level contains the message
func AssertLogContains(t *testing.T, handler *CaptureHandler, level slog.Level, message string) {
	t.Helper()

	records := handler.RecordsByLevel(level)
	for _, r := range records {
		if strings.Contains(r.Message, message) {
			return
		}
	}

	t.Errorf("Expected log message not found at level %s: %q", level, message)
	t.Logf("Captured logs at level %s:", level)
	for _, r := range records {
		t.Logf("  - %s", r.Message)
	}
}

// AssertLogAttr checks that some captured record carries the given attribute
func AssertLogAttr(t *testing.T, handler *CaptureHandler, key string, expectedValue any) {
	t.Helper()

	if !handler.ContainsAttr(key, expectedValue) {
		t.Errorf("Expected log attribute not found: %s=%v", key, expectedValue)
		t.Logf("Captured logs:")
		for _, r := range handler.Records() {
			t.Logf("  - %s: %v", r.Message, r.Attrs)
		}
	}
}

// AssertNoErrors checks that no error-level logs were recorded
func AssertNoErrors(t *testing.T, handler *CaptureHandler) {
	t.Helper()

	errorRecords := handler.RecordsByLevel(slog.LevelError)
	if len(errorRecords) > 0 {
		t.Errorf("Unexpected error logs found:")
		for _, r := range errorRecords {
			t.Errorf("  - %s: %v", r.Message, r.Attrs)
		}
	}
}
