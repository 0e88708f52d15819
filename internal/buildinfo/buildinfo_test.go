package buildinfo

import "testing"

func TestString(t *testing.T) {
	got := String()
	want := "fibprime dev (commit=none, date=unknown)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
