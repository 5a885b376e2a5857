package play

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Options configures playback and the demo's screen construction.
type Options struct {
	// Backend names the backend kind ("auto", "terminfo", "console",
	// "basic"). Used by entry points, not by Play itself.
	Backend string `toml:"backend"`
	// BufferHeight is the scrollable backing buffer height in rows.
	BufferHeight int `toml:"buffer_height"`
	// StopOnResize makes Play return ErrResized when the terminal is
	// resized instead of carrying on with a stale grid.
	StopOnResize bool `toml:"stop_on_resize"`
	// TickMillis is the frame interval; 0 means the 50ms default.
	TickMillis int `toml:"tick_millis"`
}

// DefaultOptions returns the options used when no config file is given.
func DefaultOptions() Options {
	return Options{
		Backend:      "auto",
		BufferHeight: 200,
		TickMillis:   50,
	}
}

// LoadOptions reads a TOML options file over the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return opts, fmt.Errorf("play: loading %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return opts, fmt.Errorf("play: unknown option %q in %s", undecoded[0].String(), path)
	}
	return opts, nil
}

func (o Options) tickInterval() time.Duration {
	if o.TickMillis <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(o.TickMillis) * time.Millisecond
}
