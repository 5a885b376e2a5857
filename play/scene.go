// Package play runs ordered scenes of timed effects against a Screen
// at a fixed tick rate, handling quit/skip keys and resize aborts.
package play

import "github.com/lixenwraith/termweave/event"

// Effect is one animated element of a scene. Update is called once per
// tick with the frame number. A positive delete count removes the
// effect from its scene once it decrements to zero; anything else
// means the effect lives for the whole scene.
type Effect interface {
	Update(frame int)
	DeleteCount() int
	SetDeleteCount(count int)
}

// Scene groups effects into one playable unit.
type Scene interface {
	Effects() []Effect
	// Duration is the scene length in ticks, or negative to run until
	// skipped or quit.
	Duration() int
	// ClearsScreen reports whether the grid is cleared on scene entry.
	ClearsScreen() bool
	Reset()
	// ProcessEvent may consume an event by returning nil, or pass it
	// through (possibly transformed) for the player's key handling.
	ProcessEvent(ev event.Event) event.Event
	RemoveEffect(e Effect)
}

// SimpleScene is a ready-made Scene for callers that do not need
// custom event handling.
type SimpleScene struct {
	effects  []Effect
	duration int
	clear    bool
}

// NewSimpleScene builds a scene over the given effects. duration is in
// ticks; negative means indefinite.
func NewSimpleScene(effects []Effect, duration int, clear bool) *SimpleScene {
	return &SimpleScene{effects: effects, duration: duration, clear: clear}
}

func (s *SimpleScene) Effects() []Effect { return s.effects }

func (s *SimpleScene) Duration() int { return s.duration }

func (s *SimpleScene) ClearsScreen() bool { return s.clear }

func (s *SimpleScene) Reset() {}

// ProcessEvent passes every event through to the player.
func (s *SimpleScene) ProcessEvent(ev event.Event) event.Event { return ev }

func (s *SimpleScene) RemoveEffect(e Effect) {
	for i, cur := range s.effects {
		if cur == e {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			return
		}
	}
}

// AddEffect appends an effect to the scene.
func (s *SimpleScene) AddEffect(e Effect) {
	s.effects = append(s.effects, e)
}
