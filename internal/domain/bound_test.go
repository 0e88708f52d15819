package domain

import (
	"errors"
	"testing"
)

func TestParseBound(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"10", 10},
		{"  42\n", 42},
		{"+7", 7},
	}
	for _, c := range cases {
		got, err := ParseBound(c.input)
		if err != nil {
			t.Errorf("ParseBound(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseBound(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseBoundErrors(t *testing.T) {
	cases := []struct {
		input string
		kind  ErrorKind
	}{
		{"", KindParse},
		{"   ", KindParse},
		{"abc", KindParse},
		{"3.5", KindParse},
		{"-1", KindInvalidArgument},
		{"99999999999999999999", KindOutOfRange},
	}
	for _, c := range cases {
		_, err := ParseBound(c.input)
		if err == nil {
			t.Errorf("ParseBound(%q) expected error", c.input)
			continue
		}
		if !IsKind(err, c.kind) {
			t.Errorf("ParseBound(%q) kind mismatch, want %s, got %v", c.input, c.kind, err)
		}
	}
}

func TestParseIntegerAcceptsNegative(t *testing.T) {
	got, err := ParseInteger("-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -13 {
		t.Fatalf("expected -13, got %d", got)
	}

	_, err = ParseInteger("x1")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse in chain, got %v", err)
	}
}
