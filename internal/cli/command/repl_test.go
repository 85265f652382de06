package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRepl_DefaultAction(t *testing.T) {
	home := t.TempDir()
	path := writeFile(t, "cli.yaml", "history:\n  file: "+filepath.Join(home, "history")+"\n")

	out, errOut, err := runApp(t, "put a b hello\nget a b\nbogus\nexit\n", "--config", path)
	if err != nil {
		t.Fatalf("repl error = %v", err)
	}
	if strings.Count(out, "hello") < 2 {
		t.Errorf("repl output missing results:\n%s", out)
	}
	if strings.Contains(out, "twokey> ") {
		t.Errorf("prompt printed for non-terminal input:\n%s", out)
	}
	if !strings.Contains(errOut, "Error:") {
		t.Errorf("stderr = %q, want unknown command error", errOut)
	}

	data, err := os.ReadFile(filepath.Join(home, "history"))
	if err != nil {
		t.Fatalf("history not saved: %v", err)
	}
	if !strings.Contains(string(data), "put a b hello") {
		t.Errorf("history = %q, want recorded commands", data)
	}
}

func TestRepl_Subcommand(t *testing.T) {
	out, _, err := runApp(t, "put x y z\nlen\n", "-o", "json", "repl")
	if err != nil {
		t.Fatalf("repl error = %v", err)
	}
	if !strings.Contains(out, `"entries": 1`) {
		t.Errorf("repl output = %q, want lengths", out)
	}
}
