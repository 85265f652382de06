package repl

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory("/tmp/h", 0)
	if h.maxSize != DefaultHistorySize {
		t.Errorf("maxSize = %d, want %d", h.maxSize, DefaultHistorySize)
	}
	if h.file != "/tmp/h" {
		t.Errorf("file = %q, want %q", h.file, "/tmp/h")
	}
}

func TestHistory_Add(t *testing.T) {
	h := NewHistory("", 10)

	h.Add("put a b c")
	h.Add("put a b c")
	h.Add("get a b")

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (consecutive duplicate dropped)", h.Len())
	}
}

func TestHistory_Add_MaxSize(t *testing.T) {
	h := NewHistory("", 3)
	for _, cmd := range []string{"a", "b", "c", "d", "e"} {
		h.Add(cmd)
	}

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	if got := h.Get(2); got != "c" {
		t.Errorf("Get(2) = %q, want oldest kept entry %q", got, "c")
	}
}

func TestHistory_Get(t *testing.T) {
	h := NewHistory("", 10)
	h.Add("first")
	h.Add("second")

	tests := []struct {
		index int
		want  string
	}{
		{0, "second"},
		{1, "first"},
		{2, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := h.Get(tt.index); got != tt.want {
			t.Errorf("Get(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestHistory_Recent(t *testing.T) {
	h := NewHistory("", 10)
	for _, cmd := range []string{"a", "b", "c"} {
		h.Add(cmd)
	}

	if got := h.Recent(2); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Recent(2) = %v, want [b c]", got)
	}
	if got := h.Recent(0); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Recent(0) = %v, want all", got)
	}
	if got := h.Recent(10); len(got) != 3 {
		t.Errorf("Recent(10) len = %d, want 3", len(got))
	}
}

func TestHistory_SaveLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".twokey", "history")

	h := NewHistory(file, 10)
	h.Add("put a b c")
	h.Add(`put "x y" z 1`)
	if err := h.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	h2 := NewHistory(file, 10)
	if err := h2.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := h2.Recent(0); !slices.Equal(got, []string{"put a b c", `put "x y" z 1`}) {
		t.Errorf("loaded entries = %q", got)
	}
}

func TestHistory_Load_Trims(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(file, []byte("a\n\nb\nc\nd\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	h := NewHistory(file, 2)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := h.Recent(0); !slices.Equal(got, []string{"c", "d"}) {
		t.Errorf("Recent() = %v, want [c d]", got)
	}
}

func TestHistory_Load_NonexistentFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "missing"), 10)
	if err := h.Load(); err != nil {
		t.Errorf("Load() error = %v, want nil for missing file", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistory_InMemory(t *testing.T) {
	h := NewHistory("", 10)
	h.Add("keys")
	if err := h.Save(); err != nil {
		t.Errorf("Save() error = %v, want nil without a file", err)
	}
	if err := h.Load(); err != nil {
		t.Errorf("Load() error = %v, want nil without a file", err)
	}
}
