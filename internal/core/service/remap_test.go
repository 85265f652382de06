package service

import (
	"errors"
	"testing"

	"github.com/yndnr/twokey-go/internal/core/domain"
)

func TestParseRemap(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		args    []string
		wantErr *domain.DomainError
	}{
		{"set", "set", []string{"v"}, nil},
		{"case insensitive", "UPPER", nil, nil},
		{"delete", "delete", nil, nil},
		{"empty arg allowed", "append", []string{""}, nil},
		{"unknown", "explode", nil, domain.ErrUnknownRemapOp},
		{"missing arg", "set", nil, domain.ErrMissingArgument},
		{"extra arg", "set", []string{"a", "b"}, domain.ErrInvalidArgument},
		{"arg on nullary", "lower", []string{"a"}, domain.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRemap(tt.op, tt.args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseRemap() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRemap() error = %v", err)
			}
			if r.fn == nil {
				t.Error("ParseRemap() returned a Remap without a function")
			}
		})
	}
}

func TestRemapFunc(t *testing.T) {
	tests := []struct {
		op, arg   string
		cur       string
		present   bool
		wantValue string
		wantKeep  bool
	}{
		{OpSet, "x", "c", true, "x", true},
		{OpAppend, "!", "c", true, "c!", true},
		{OpPrepend, ">", "", false, ">", true},
		{OpUpper, "", "abc", true, "ABC", true},
		{OpLower, "", "", false, "", false},
		{OpDefault, "d", "c", true, "c", true},
		{OpDefault, "d", "", false, "d", true},
		{OpDelete, "", "c", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			v, keep := remapFunc(tt.op, tt.arg)("k", tt.cur, tt.present)
			if v != tt.wantValue || keep != tt.wantKeep {
				t.Errorf("remapFunc(%s)(%q, %v) = (%q, %v), want (%q, %v)",
					tt.op, tt.cur, tt.present, v, keep, tt.wantValue, tt.wantKeep)
			}
		})
	}
}
