package repl

import (
	"slices"
	"strings"

	"github.com/yndnr/twokey-go/internal/core/service"
)

// Completer provides prefix completion for REPL input.
type Completer struct {
	commands []string
	ops      []string
}

// NewCompleter creates a completer over the engine's commands and the
// modify operations.
func NewCompleter() *Completer {
	return &Completer{
		commands: commandNames(),
		ops:      slices.Clone(service.RemapOps),
	}
}

// Complete returns completions for a partial input line. The first word
// completes to command names, the word after "help" to a command name and
// the fourth word of "modify" to an operation.
func (c *Completer) Complete(line string) []string {
	words := strings.Fields(line)
	if strings.HasSuffix(line, " ") || len(words) == 0 {
		words = append(words, "")
	}

	last := words[len(words)-1]
	switch {
	case len(words) == 1:
		return matchPrefix(c.commands, last)
	case len(words) == 2 && words[0] == "help":
		return matchPrefix(c.commands, last)
	case len(words) == 4 && words[0] == "modify":
		return matchPrefix(c.ops, last)
	default:
		return nil
	}
}

// Commands returns the command names starting with prefix.
func (c *Completer) Commands(prefix string) []string {
	return matchPrefix(c.commands, prefix)
}

func matchPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, s := range candidates {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	return out
}
