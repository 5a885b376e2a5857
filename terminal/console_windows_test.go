//go:build windows

package terminal

import "testing"

func TestConsoleRawPrintTracksCursor(t *testing.T) {
	b := &consoleBackend{}

	b.RawPrint("AB", 0, 0)
	if b.cur.needsMove(2, 0) {
		t.Errorf("Expected a contiguous print to skip repositioning")
	}
	if !b.cur.needsMove(0, 1) {
		t.Errorf("Expected a print on another row to reposition")
	}

	b.RawPrint("C", 2, 0)
	if b.cur.needsMove(3, 0) {
		t.Errorf("Expected the cursor to advance past the printed text")
	}
}

func TestConsoleRawPrintEmptyKeepsCursor(t *testing.T) {
	b := &consoleBackend{}

	b.RawPrint("", 5, 5)
	if !b.cur.needsMove(5, 5) {
		t.Errorf("Expected an empty print to leave the cursor cache untouched")
	}
}

func TestConsoleHasResizedPollsWindowSize(t *testing.T) {
	b := &consoleBackend{}
	b.lastW, b.lastH = b.Size()

	if b.HasResized() {
		t.Errorf("Expected no resize while the window size is unchanged")
	}

	b.lastW--
	if !b.HasResized() {
		t.Errorf("Expected a changed window size to report a resize")
	}
	if b.HasResized() {
		t.Errorf("Expected the resize flag to reset once read")
	}
}
