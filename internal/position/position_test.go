package position

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Position
		want int
	}{
		{New(0, 0), New(0, 0), 0},
		{New(0, 1), New(0, 2), -1},
		{New(0, 2), New(0, 1), 1},
		{New(1, 0), New(0, 99), 1},
		{New(0, 99), New(1, 0), -1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestBeforeAfter(t *testing.T) {
	a, b := New(0, 0), New(0, 1)
	if !a.Before(b) {
		t.Error("expected a before b")
	}
	if !b.After(a) {
		t.Error("expected b after a")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a should be neither before nor after itself")
	}
}

func TestMinMax(t *testing.T) {
	a, b := New(0, 5), New(1, 0)
	if Min(a, b) != a {
		t.Errorf("Min = %v, want %v", Min(a, b), a)
	}
	if Max(a, b) != b {
		t.Errorf("Max = %v, want %v", Max(a, b), b)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(New(0, 2), New(1, 3))
	if !r.IsValid() {
		t.Error("expected valid range")
	}
	if r.IsEmpty() {
		t.Error("expected non-empty range")
	}
	if !r.Contains(New(0, 2)) {
		t.Error("expected range to contain its start")
	}
	if r.Contains(New(1, 3)) {
		t.Error("half-open range should not contain its end")
	}
	if !r.ContainsInclusive(New(1, 3)) {
		t.Error("inclusive contains should include end")
	}

	inverted := NewRange(New(1, 0), New(0, 0))
	if inverted.IsValid() {
		t.Error("expected inverted range to be invalid")
	}
}
