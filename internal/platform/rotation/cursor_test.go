package rotation

import "testing"

func TestCursor_NextWrapsAfterNSteps(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			c := NewCursor(n)
			c.Goto(start)
			for k := 0; k < n; k++ {
				c.Next()
			}
			if got, _ := c.Current(); got != start {
				t.Fatalf("n=%d start=%d: got %d after full cycle", n, start, got)
			}
		}
	}
}

func TestCursor_PrevInvertsNext(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			c := NewCursor(n)
			c.Goto(start)
			c.Next()
			if got := c.Prev(); got != start {
				t.Fatalf("n=%d start=%d: prev(next) = %d", n, start, got)
			}
			c.Prev()
			if got := c.Next(); got != start {
				t.Fatalf("n=%d start=%d: next(prev) = %d", n, start, got)
			}
		}
	}
}

func TestCursor_WrapEdges(t *testing.T) {
	t.Parallel()

	c := NewCursor(3)
	if got := c.Prev(); got != 2 {
		t.Fatalf("prev from 0 should wrap to 2, got %d", got)
	}
	if got := c.Next(); got != 0 {
		t.Fatalf("next from 2 should wrap to 0, got %d", got)
	}
}

func TestCursor_GotoClamps(t *testing.T) {
	t.Parallel()

	c := NewCursor(4)
	if got := c.Goto(9); got != 3 {
		t.Fatalf("expected clamp to 3, got %d", got)
	}
	if got := c.Goto(-2); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

func TestCursor_EmptyIsSafe(t *testing.T) {
	t.Parallel()

	var c Cursor
	c.Next()
	c.Prev()
	c.Goto(5)
	if _, ok := c.Current(); ok {
		t.Fatalf("empty cursor must not report a current index")
	}
	if w := c.Window(3); w != nil {
		t.Fatalf("expected no window, got %v", w)
	}
}

func TestCursor_ResetAndWindow(t *testing.T) {
	t.Parallel()

	c := NewCursor(5)
	c.Goto(4)
	w := c.Window(3)
	if len(w) != 3 || w[0] != 4 || w[1] != 0 || w[2] != 1 {
		t.Fatalf("unexpected window %v", w)
	}

	c.Reset(2)
	if got, ok := c.Current(); !ok || got != 0 || c.Len() != 2 {
		t.Fatalf("reset should point at 0 of 2, got %d ok=%v len=%d", got, ok, c.Len())
	}
	if w := c.Window(9); len(w) != 2 {
		t.Fatalf("window larger than collection should be capped, got %v", w)
	}
}
