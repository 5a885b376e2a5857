package play

import (
	"errors"
	"time"

	"github.com/lixenwraith/termweave/event"
	"github.com/lixenwraith/termweave/screen"
)

// ErrResized reports that playback stopped because the terminal was
// resized while Options.StopOnResize was set.
var ErrResized = errors.New("play: terminal was resized")

// Play runs scenes in order, repeating the whole list until a quit key
// (X, x, Q or q) ends playback. Space or enter skips the current scene.
// Each tick advances every effect, refreshes the screen and drains all
// pending input through the scene's event handler. Resize is checked
// once per tick.
func Play(s *screen.Screen, scenes []Scene, opts Options) error {
	tick := opts.tickInterval()

	s.Clear()
	for {
		for _, scene := range scenes {
			frame := 0
			if scene.ClearsScreen() {
				s.Clear()
			}
			scene.Reset()

			resized, skipped := false, false
			for (scene.Duration() < 0 || frame < scene.Duration()) && !resized && !skipped {
				frame++

				// Snapshot: removal during update must not skip effects
				effects := append([]Effect(nil), scene.Effects()...)
				for _, effect := range effects {
					effect.Update(frame)
					if count := effect.DeleteCount(); count > 0 {
						count--
						effect.SetDeleteCount(count)
						if count == 0 {
							scene.RemoveEffect(effect)
						}
					}
				}

				if err := s.Refresh(); err != nil {
					return err
				}

				ev := s.GetEvent()
				for ev != nil {
					ev = scene.ProcessEvent(ev)
					if ke, ok := ev.(event.KeyboardEvent); ok {
						switch ke.KeyCode {
						case 'X', 'x', 'Q', 'q':
							return nil
						case ' ', '\n':
							skipped = true
						}
						if skipped {
							break
						}
					}
					ev = s.GetEvent()
				}

				resized = s.HasResized()
				time.Sleep(tick)
			}

			if resized && opts.StopOnResize {
				return ErrResized
			}
		}
	}
}
