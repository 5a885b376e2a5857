package terminal

import "testing"

func TestCursorCacheContiguousPrints(t *testing.T) {
	var c cursorCache

	if !c.needsMove(0, 0) {
		t.Errorf("Expected a fresh cache to require a cursor move")
	}

	c.advance(0, 0, 5)
	if c.needsMove(5, 0) {
		t.Errorf("Expected no move when printing at the position the cursor was left at")
	}
	if !c.needsMove(6, 0) {
		t.Errorf("Expected a move when skipping a cell on the same row")
	}
	if !c.needsMove(5, 1) {
		t.Errorf("Expected a move when the row changes")
	}
}

func TestCursorCacheWideAdvance(t *testing.T) {
	var c cursorCache

	// Two double-width cells printed at column 3 leave the cursor at 7.
	c.advance(3, 2, 4)
	if c.needsMove(7, 2) {
		t.Errorf("Expected the cursor to advance by the printed cell width")
	}
}

func TestCursorCacheInvalidate(t *testing.T) {
	var c cursorCache

	c.advance(0, 0, 3)
	c.invalidate()
	if !c.needsMove(3, 0) {
		t.Errorf("Expected an invalidated cache to require a cursor move")
	}
}
