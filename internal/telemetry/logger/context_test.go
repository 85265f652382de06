package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)

	retrieved := FromContext(ctx)
	if retrieved == nil {
		t.Fatal("FromContext returned nil")
	}

	retrieved.Info("test message")

	if buf.Len() == 0 {
		t.Error("Logger from context should produce output")
	}
}

func TestFromContext_Default(t *testing.T) {
	// Should return default logger when none is set
	if l := FromContext(context.Background()); l == nil {
		t.Error("FromContext should return default logger, got nil")
	}
}

func TestWithSessionID(t *testing.T) {
	sessionID := "01J9Z3Q7V8X2K4M6N8P0R2T4V6"
	ctx := WithSessionID(context.Background(), sessionID)

	if got := SessionIDFromContext(ctx); got != sessionID {
		t.Errorf("SessionIDFromContext() = %q, want %q", got, sessionID)
	}
}

func TestSessionIDFromContext_Empty(t *testing.T) {
	if got := SessionIDFromContext(context.Background()); got != "" {
		t.Errorf("SessionIDFromContext() = %q, want empty", got)
	}
}

func TestL_WithSessionID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)
	ctx = WithSessionID(ctx, "sess-1")

	L(ctx).Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if id, ok := logEntry["session_id"].(string); !ok || id != "sess-1" {
		t.Errorf("Expected session_id='sess-1', got %v", logEntry["session_id"])
	}
}

func TestL_NoSessionID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	L(WithLogger(context.Background(), l)).Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if _, ok := logEntry["session_id"]; ok {
		t.Error("session_id should be absent when not set in context")
	}
}

func TestContextKeyCollision(t *testing.T) {
	// A plain string key with the same text must not be picked up.
	ctx := context.WithValue(context.Background(), "twokey.session_id", "other")
	if got := SessionIDFromContext(ctx); got != "" {
		t.Errorf("SessionIDFromContext() = %q, want empty for foreign key type", got)
	}
}
