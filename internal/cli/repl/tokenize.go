package repl

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote is returned by Tokenize for a quote left open.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Tokenize splits a command line into arguments.
//
// Arguments are separated by spaces or tabs. Double quotes group text and
// honour the escapes \" and \\. Single quotes group text literally. An
// unquoted '#' at the start of an argument begins a comment that runs to
// the end of the line. "" yields an empty argument.
func Tokenize(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inToken bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '"' && r == '\\':
			escaped = true
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		case r == '#' && !inToken:
			return args, nil
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}
