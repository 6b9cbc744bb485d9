// Package rotation drives carousels: a wrap-around cursor over a collection
// whose length is only known after each fetch, plus an optional timer that
// advances it.
package rotation

// Cursor is a bounded circular index. The zero value is an empty cursor and
// every operation on it is a no-op.
type Cursor struct {
	n int
	i int
}

func NewCursor(n int) Cursor {
	if n < 0 {
		n = 0
	}
	return Cursor{n: n}
}

func (c Cursor) Len() int {
	return c.n
}

// Current returns the index and false when the collection is empty.
func (c Cursor) Current() (int, bool) {
	if c.n == 0 {
		return 0, false
	}
	return c.i, true
}

func (c *Cursor) Next() int {
	if c.n == 0 {
		return 0
	}
	c.i = (c.i + 1) % c.n
	return c.i
}

func (c *Cursor) Prev() int {
	if c.n == 0 {
		return 0
	}
	c.i = (c.i - 1 + c.n) % c.n
	return c.i
}

// Goto clamps i into [0, n-1].
func (c *Cursor) Goto(i int) int {
	if c.n == 0 {
		return 0
	}
	switch {
	case i < 0:
		i = 0
	case i >= c.n:
		i = c.n - 1
	}
	c.i = i
	return c.i
}

// Reset points the cursor at the first item of a collection of length n.
func (c *Cursor) Reset(n int) {
	if n < 0 {
		n = 0
	}
	c.n = n
	c.i = 0
}

// Window returns up to size indexes starting at the cursor, wrapping.
func (c Cursor) Window(size int) []int {
	if c.n == 0 || size <= 0 {
		return nil
	}
	if size > c.n {
		size = c.n
	}
	out := make([]int, size)
	for k := range out {
		out[k] = (c.i + k) % c.n
	}
	return out
}
