package terminal

import (
	"testing"
	"time"

	"github.com/lixenwraith/termweave/event"
)

func newTestParser() (*inputParser, *time.Time) {
	p := newInputParser()
	clock := time.Unix(1000, 0)
	p.now = func() time.Time { return clock }
	return p, &clock
}

func keyCode(t *testing.T, ev event.Event) int {
	t.Helper()
	ke, ok := ev.(event.KeyboardEvent)
	if !ok {
		t.Fatalf("Expected KeyboardEvent, got %T", ev)
	}
	return ke.KeyCode
}

func TestParsePlainBytes(t *testing.T) {
	p, _ := newTestParser()
	p.feed([]byte("aZ "))

	for _, want := range []int{'a', 'Z', ' '} {
		if got := keyCode(t, p.next()); got != want {
			t.Errorf("Expected key %d, got %d", want, got)
		}
	}
	if ev := p.next(); ev != nil {
		t.Errorf("Expected empty queue, got %v", ev)
	}
}

func TestParseControlBytes(t *testing.T) {
	p, _ := newTestParser()

	cases := []struct {
		in   byte
		want int
	}{
		{0x08, event.KeyBack},
		{0x7f, event.KeyBack},
		{0x09, event.KeyTab},
		{0x0a, '\n'},
		{0x0d, '\n'},
		{0x03, 3}, // Ctrl+C stays raw
	}
	for _, tc := range cases {
		p.feed([]byte{tc.in})
		if got := keyCode(t, p.next()); got != tc.want {
			t.Errorf("Expected byte 0x%02x to map to %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestParseCSISequences(t *testing.T) {
	cases := []struct {
		seq  string
		want int
	}{
		{"\x1b[A", event.KeyUp},
		{"\x1b[B", event.KeyDown},
		{"\x1b[C", event.KeyRight},
		{"\x1b[D", event.KeyLeft},
		{"\x1b[H", event.KeyHome},
		{"\x1b[F", event.KeyEnd},
		{"\x1b[1~", event.KeyHome},
		{"\x1b[2~", event.KeyInsert},
		{"\x1b[3~", event.KeyDelete},
		{"\x1b[5~", event.KeyPageUp},
		{"\x1b[6~", event.KeyPageDown},
		{"\x1b[11~", event.KeyF1},
		{"\x1b[24~", event.KeyF12},
		{"\x1b[Z", event.KeyTab},
	}
	for _, tc := range cases {
		p, _ := newTestParser()
		p.feed([]byte(tc.seq))
		if got := keyCode(t, p.next()); got != tc.want {
			t.Errorf("Expected %q to decode to %d, got %d", tc.seq, tc.want, got)
		}
	}
}

func TestParseSS3Sequences(t *testing.T) {
	cases := []struct {
		seq  string
		want int
	}{
		{"\x1bOA", event.KeyUp},
		{"\x1bOP", event.KeyF1},
		{"\x1bOS", event.KeyF4},
		{"\x1bOj", event.KeyMultiply},
		{"\x1bOp", event.KeyNumpad0},
		{"\x1bOy", event.KeyNumpad9},
		{"\x1bOM", '\n'},
	}
	for _, tc := range cases {
		p, _ := newTestParser()
		p.feed([]byte(tc.seq))
		if got := keyCode(t, p.next()); got != tc.want {
			t.Errorf("Expected %q to decode to %d, got %d", tc.seq, tc.want, got)
		}
	}
}

func TestParseSplitSequence(t *testing.T) {
	p, _ := newTestParser()

	// Arrow key arriving one byte at a time must still decode
	p.feed([]byte{0x1b})
	if ev := p.next(); ev != nil {
		t.Fatalf("Expected no event before timeout, got %v", ev)
	}
	p.feed([]byte{'['})
	p.feed([]byte{'A'})
	if got := keyCode(t, p.next()); got != event.KeyUp {
		t.Errorf("Expected split arrow to decode to %d, got %d", event.KeyUp, got)
	}
}

func TestLoneEscapeTimeout(t *testing.T) {
	p, clock := newTestParser()

	p.feed([]byte{0x1b})
	if ev := p.next(); ev != nil {
		t.Fatalf("Expected ESC to be held back inside the window, got %v", ev)
	}

	*clock = clock.Add(escapeTimeout + time.Millisecond)
	if got := keyCode(t, p.next()); got != event.KeyEscape {
		t.Errorf("Expected expired ESC to surface as %d, got %d", event.KeyEscape, got)
	}
	if ev := p.next(); ev != nil {
		t.Errorf("Expected ESC to be emitted once, got %v", ev)
	}
}

func TestDoubleEscape(t *testing.T) {
	p, _ := newTestParser()
	p.feed([]byte{0x1b, 0x1b})
	if got := keyCode(t, p.next()); got != event.KeyEscape {
		t.Errorf("Expected ESC ESC to yield escape, got %d", got)
	}
}

func TestAltKeyReportsBareKey(t *testing.T) {
	p, _ := newTestParser()
	p.feed([]byte{0x1b, 'x'})
	if got := keyCode(t, p.next()); got != 'x' {
		t.Errorf("Expected Alt+x to report bare x, got %d", got)
	}
}

func TestParseUTF8(t *testing.T) {
	p, _ := newTestParser()
	p.feed([]byte("é"))
	if got := keyCode(t, p.next()); got != 0xe9 {
		t.Errorf("Expected rune ordinal 0xe9, got %d", got)
	}

	// Multibyte rune split across reads
	seq := []byte("→") // 3 bytes
	p.feed(seq[:1])
	if ev := p.next(); ev != nil {
		t.Fatalf("Expected no event on partial rune, got %v", ev)
	}
	p.feed(seq[1:])
	if got := keyCode(t, p.next()); got != '→' {
		t.Errorf("Expected rune %d, got %d", '→', got)
	}
}

func TestSGRMousePress(t *testing.T) {
	p, _ := newTestParser()
	p.feed([]byte("\x1b[<0;10;5M"))

	ev := p.next()
	me, ok := ev.(event.MouseEvent)
	if !ok {
		t.Fatalf("Expected MouseEvent, got %T", ev)
	}
	if me.X != 9 || me.Y != 4 {
		t.Errorf("Expected 0-indexed position (9,4), got (%d,%d)", me.X, me.Y)
	}
	if me.Buttons != event.LeftClick {
		t.Errorf("Expected buttons %d, got %d", event.LeftClick, me.Buttons)
	}
}

func TestSGRMouseRightAndRelease(t *testing.T) {
	p, _ := newTestParser()

	p.feed([]byte("\x1b[<2;3;3M"))
	me := p.next().(event.MouseEvent)
	if me.Buttons != event.RightClick {
		t.Errorf("Expected right click flag %d, got %d", event.RightClick, me.Buttons)
	}

	p.feed([]byte("\x1b[<2;3;3m"))
	me = p.next().(event.MouseEvent)
	if me.Buttons != 0 {
		t.Errorf("Expected release to carry no buttons, got %d", me.Buttons)
	}
}

func TestSGRMouseDoubleClick(t *testing.T) {
	p, clock := newTestParser()

	p.feed([]byte("\x1b[<0;1;1M"))
	me := p.next().(event.MouseEvent)
	if me.Buttons != event.LeftClick {
		t.Fatalf("Expected first press to be a plain click, got %d", me.Buttons)
	}

	*clock = clock.Add(100 * time.Millisecond)
	p.feed([]byte("\x1b[<0;1;1M"))
	me = p.next().(event.MouseEvent)
	if me.Buttons != event.LeftClick|event.DoubleClick {
		t.Errorf("Expected double click mask %d, got %d",
			event.LeftClick|event.DoubleClick, me.Buttons)
	}

	// A third press outside the window is a plain click again
	*clock = clock.Add(time.Second)
	p.feed([]byte("\x1b[<0;1;1M"))
	me = p.next().(event.MouseEvent)
	if me.Buttons != event.LeftClick {
		t.Errorf("Expected plain click after window expiry, got %d", me.Buttons)
	}
}

func TestSGRMouseWheelSwallowed(t *testing.T) {
	p, _ := newTestParser()
	p.feed([]byte("\x1b[<64;5;5M"))
	if ev := p.next(); ev != nil {
		t.Errorf("Expected wheel event to be swallowed, got %v", ev)
	}
}

func TestUnknownCSISwallowed(t *testing.T) {
	p, _ := newTestParser()
	p.feed([]byte("\x1b[99~x"))
	if got := keyCode(t, p.next()); got != 'x' {
		t.Errorf("Expected unknown CSI to be dropped and x to follow, got %d", got)
	}
}
