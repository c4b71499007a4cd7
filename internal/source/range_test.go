package source

import "testing"

func TestRangeText(t *testing.T) {
	src := "hello world"
	r := From(6, 11)
	if got := r.Text(src); got != "world" {
		t.Fatalf("Text() = %q, want %q", got, "world")
	}
	if r.Empty() {
		t.Fatalf("non-empty range reported Empty()")
	}
}

func TestRangeEmpty(t *testing.T) {
	r := Range{}
	if !r.Empty() {
		t.Fatalf("zero-value Range should be Empty()")
	}
	if r.Text("anything") != "" {
		t.Fatalf("empty range should yield empty text")
	}
}

func TestFromClampsBackwardsEnd(t *testing.T) {
	r := From(5, 2)
	if r.Length != 0 {
		t.Fatalf("From with end < start should clamp to zero length, got %#v", r)
	}
	if r.Start != 5 {
		t.Fatalf("From should keep Start, got %#v", r)
	}
}
