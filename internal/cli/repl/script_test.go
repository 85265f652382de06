package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yndnr/twokey-go/internal/core/domain"
)

const testScript = `# seed
put a b c

put a d e
get a missing   # fails
put x y z
`

func TestRunScript_Success(t *testing.T) {
	e, out := newTestEngine(t)
	script := "put a b c\nput a d e\n# done\nlen\n"

	if err := e.RunScript(context.Background(), strings.NewReader(script), ScriptOptions{}); err != nil {
		t.Fatalf("RunScript() error = %v", err)
	}
	if !strings.Contains(out.String(), "outer_keys") {
		t.Errorf("output = %q, want len result", out.String())
	}
}

func TestRunScript_StopsOnError(t *testing.T) {
	e, _ := newTestEngine(t)

	err := e.RunScript(context.Background(), strings.NewReader(testScript), ScriptOptions{})
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("RunScript() error = %v, want *ScriptError", err)
	}
	if se.Failed != 1 {
		t.Errorf("Failed = %d, want 1", se.Failed)
	}
	if !strings.HasPrefix(err.Error(), "line 5:") {
		t.Errorf("error = %q, want line 5 prefix", err.Error())
	}
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("error = %v, want ErrEntryNotFound", err)
	}
	if e.svc.Size(context.Background(), "x") != -1 {
		t.Error("commands after the failure should not run")
	}
}

func TestRunScript_KeepGoing(t *testing.T) {
	e, _ := newTestEngine(t)
	errOut := &bytes.Buffer{}

	err := e.RunScript(context.Background(), strings.NewReader(testScript+"explode\n"), ScriptOptions{
		KeepGoing: true,
		ErrOut:    errOut,
	})
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("RunScript() error = %v, want *ScriptError", err)
	}
	if se.Failed != 2 || se.Total != 5 {
		t.Errorf("ScriptError = %d of %d, want 2 of 5", se.Failed, se.Total)
	}
	if err.Error() != "2 of 5 commands failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if strings.Count(errOut.String(), "Error: line") != 2 {
		t.Errorf("errOut = %q, want two reported lines", errOut.String())
	}
	if e.svc.Size(context.Background(), "x") != 1 {
		t.Error("commands after the failure should run with KeepGoing")
	}
}

func TestRunScript_Exit(t *testing.T) {
	e, _ := newTestEngine(t)

	err := e.RunScript(context.Background(), strings.NewReader("put a b c\nexit\nput x y z\n"), ScriptOptions{})
	if err != nil {
		t.Fatalf("RunScript() error = %v", err)
	}
	if e.svc.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (script stops at exit)", e.svc.Len())
	}
}

func TestRunScript_Cancelled(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := e.RunScript(ctx, strings.NewReader("put a b c\n"), ScriptOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("RunScript() error = %v, want context.Canceled", err)
	}
}

func TestRunScript_Progress(t *testing.T) {
	e, _ := newTestEngine(t)
	progress := &bytes.Buffer{}

	err := e.RunScript(context.Background(), strings.NewReader("put a b c\nput a d e\n"), ScriptOptions{Progress: progress})
	if err != nil {
		t.Fatalf("RunScript() error = %v", err)
	}
	if !strings.Contains(progress.String(), "(2/2)") {
		t.Errorf("progress = %q, want (2/2)", progress.String())
	}
}
