package play

import (
	"errors"
	"testing"

	"github.com/lixenwraith/termweave/event"
	"github.com/lixenwraith/termweave/screen"
)

// scriptBackend feeds a fixed sequence of events to the player, after
// an optional number of empty polls.
type scriptBackend struct {
	delay   int
	events  []event.Event
	resized bool
}

func (b *scriptBackend) Init() error { return nil }

func (b *scriptBackend) Fini() {}

func (b *scriptBackend) Size() (int, int) { return 20, 5 }

func (b *scriptBackend) Colours() int { return 8 }

func (b *scriptBackend) RawPrint(text string, x, y int) {}

func (b *scriptBackend) SetColours(fg, attr, bg int) {}

func (b *scriptBackend) Clear() {}

func (b *scriptBackend) ScrollUp() {}

func (b *scriptBackend) Flush() error { return nil }

func (b *scriptBackend) PollEvent() event.Event {
	if b.delay > 0 {
		b.delay--
		return nil
	}
	if len(b.events) == 0 {
		return nil
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev
}

func (b *scriptBackend) HasResized() bool {
	r := b.resized
	b.resized = false
	return r
}

type countEffect struct {
	updates     int
	deleteCount int
}

func (e *countEffect) Update(frame int) { e.updates++ }

func (e *countEffect) DeleteCount() int { return e.deleteCount }

func (e *countEffect) SetDeleteCount(c int) { e.deleteCount = c }

func fastOptions() Options {
	return Options{TickMillis: 1}
}

func testScreen(t *testing.T, b *scriptBackend) *screen.Screen {
	t.Helper()
	s, err := screen.New(b, 10)
	if err != nil {
		t.Fatalf("screen.New failed: %v", err)
	}
	return s
}

func key(code int) event.Event {
	return event.KeyboardEvent{KeyCode: code}
}

func TestPlayQuitKey(t *testing.T) {
	b := &scriptBackend{events: []event.Event{key('q')}}
	s := testScreen(t, b)

	e := &countEffect{}
	scene := NewSimpleScene([]Effect{e}, -1, false)

	if err := Play(s, []Scene{scene}, fastOptions()); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if e.updates != 1 {
		t.Errorf("Expected one frame before quit, got %d", e.updates)
	}
}

func TestPlaySkipKey(t *testing.T) {
	b := &scriptBackend{events: []event.Event{key(' '), key('q')}}
	s := testScreen(t, b)

	e1 := &countEffect{}
	e2 := &countEffect{}
	scenes := []Scene{
		NewSimpleScene([]Effect{e1}, -1, false),
		NewSimpleScene([]Effect{e2}, -1, false),
	}

	if err := Play(s, scenes, fastOptions()); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if e1.updates != 1 {
		t.Errorf("Expected skip to end scene 1 after one frame, got %d", e1.updates)
	}
	if e2.updates != 1 {
		t.Errorf("Expected scene 2 to run after the skip, got %d updates", e2.updates)
	}
}

func TestPlaySceneDuration(t *testing.T) {
	b := &scriptBackend{delay: 3, events: []event.Event{key('q')}}
	s := testScreen(t, b)

	e1 := &countEffect{}
	e2 := &countEffect{}
	scenes := []Scene{
		NewSimpleScene([]Effect{e1}, 3, false),
		NewSimpleScene([]Effect{e2}, -1, false),
	}

	if err := Play(s, scenes, fastOptions()); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if e1.updates != 3 {
		t.Errorf("Expected exactly 3 frames for a duration-3 scene, got %d", e1.updates)
	}
}

func TestPlayEffectDeleteCountdown(t *testing.T) {
	b := &scriptBackend{delay: 4, events: []event.Event{key('q')}}
	s := testScreen(t, b)

	e := &countEffect{deleteCount: 2}
	scene := NewSimpleScene([]Effect{e}, 4, false)

	if err := Play(s, []Scene{scene}, fastOptions()); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if e.updates != 2 {
		t.Errorf("Expected effect removed after its countdown, got %d updates", e.updates)
	}
	if len(scene.Effects()) != 0 {
		t.Errorf("Expected effect removed from scene, got %d left", len(scene.Effects()))
	}
}

func TestPlayStopOnResize(t *testing.T) {
	b := &scriptBackend{resized: true}
	s := testScreen(t, b)

	scene := NewSimpleScene([]Effect{&countEffect{}}, -1, false)
	opts := fastOptions()
	opts.StopOnResize = true

	err := Play(s, []Scene{scene}, opts)
	if !errors.Is(err, ErrResized) {
		t.Fatalf("Expected ErrResized, got %v", err)
	}
}

func TestPlayResizeIgnoredByDefault(t *testing.T) {
	b := &scriptBackend{resized: true, delay: 1, events: []event.Event{key('x')}}
	s := testScreen(t, b)

	e := &countEffect{}
	scene := NewSimpleScene([]Effect{e}, -1, false)

	if err := Play(s, []Scene{scene}, fastOptions()); err != nil {
		t.Fatalf("Expected resize to be ignored without StopOnResize, got %v", err)
	}
	if e.updates != 2 {
		t.Errorf("Expected playback to continue past the resize, got %d updates", e.updates)
	}
}
