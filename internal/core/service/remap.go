package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yndnr/twokey-go/internal/core/domain"
	"github.com/yndnr/twokey-go/pkg/nestedmap"
)

// Remap operation names accepted by ParseRemap.
const (
	OpSet     = "set"
	OpAppend  = "append"
	OpPrepend = "prepend"
	OpUpper   = "upper"
	OpLower   = "lower"
	OpDefault = "default"
	OpDelete  = "delete"
)

// RemapOps lists the supported operations in help order.
var RemapOps = []string{OpSet, OpAppend, OpPrepend, OpUpper, OpLower, OpDefault, OpDelete}

// opsWithArg take exactly one argument; the rest take none.
var opsWithArg = []string{OpSet, OpAppend, OpPrepend, OpDefault}

// Remap is a named value transformation applied by Modify.
type Remap struct {
	Op  string
	Arg string
	fn  nestedmap.RemapFunc[string, string]
}

// ParseRemap builds a Remap from an operation name and its arguments.
func ParseRemap(op string, args ...string) (Remap, error) {
	op = strings.ToLower(op)
	if !slices.Contains(RemapOps, op) {
		return Remap{}, domain.ErrUnknownRemapOp.WithDetails(fmt.Sprintf("%q (want one of %s)", op, strings.Join(RemapOps, ", ")))
	}

	needsArg := slices.Contains(opsWithArg, op)
	switch {
	case needsArg && len(args) == 0:
		return Remap{}, domain.ErrMissingArgument.WithDetails(op + " needs a value")
	case needsArg && len(args) > 1, !needsArg && len(args) > 0:
		return Remap{}, domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("too many arguments for %s", op))
	}

	r := Remap{Op: op}
	if needsArg {
		r.Arg = args[0]
	}
	r.fn = remapFunc(op, r.Arg)
	return r, nil
}

// remapFunc returns the transformation for op. An absent value reads as
// the empty string for append and prepend; upper and lower leave an absent
// value absent.
func remapFunc(op, arg string) nestedmap.RemapFunc[string, string] {
	switch op {
	case OpSet:
		return func(_ string, _ string, _ bool) (string, bool) {
			return arg, true
		}
	case OpAppend:
		return func(_ string, cur string, _ bool) (string, bool) {
			return cur + arg, true
		}
	case OpPrepend:
		return func(_ string, cur string, _ bool) (string, bool) {
			return arg + cur, true
		}
	case OpUpper:
		return func(_ string, cur string, present bool) (string, bool) {
			return strings.ToUpper(cur), present
		}
	case OpLower:
		return func(_ string, cur string, present bool) (string, bool) {
			return strings.ToLower(cur), present
		}
	case OpDefault:
		return func(_ string, cur string, present bool) (string, bool) {
			if present {
				return cur, true
			}
			return arg, true
		}
	default:
		return func(_ string, _ string, _ bool) (string, bool) {
			return "", false
		}
	}
}
