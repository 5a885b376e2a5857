package terminal

// cursorCache tracks the last position the device cursor was left at, so
// backends reposition only when a print is not contiguous with the
// previous one.
type cursorCache struct {
	x, y  int
	valid bool
}

func (c *cursorCache) needsMove(x, y int) bool {
	return !c.valid || x != c.x || y != c.y
}

// advance records the cursor position after printing width cells at (x, y).
func (c *cursorCache) advance(x, y, width int) {
	c.x = x + width
	c.y = y
	c.valid = true
}

func (c *cursorCache) invalidate() {
	c.valid = false
}
