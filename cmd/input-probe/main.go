// input-probe echoes decoded input events for backend debugging: run
// it, press keys and click around, and watch what the parser produces.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/termweave/event"
	"github.com/lixenwraith/termweave/screen"
	"github.com/lixenwraith/termweave/terminal"
)

var backendFlag = flag.String("backend", "", "Backend: terminfo, console, basic (default: auto-detect)")

const maxLog = 16

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT-PROBE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	kind := terminal.Detect()
	if *backendFlag != "" {
		k, ok := terminal.KindByName(*backendFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown backend %q\n", *backendFlag)
			os.Exit(1)
		}
		kind = k
	}

	backend, err := terminal.New(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s backend: %v\n", kind, err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "initializing %s backend: %v\n", kind, err)
		os.Exit(1)
	}
	defer backend.Fini()

	// Surface every key the backend can decode, including modifiers
	if mapper, ok := backend.(terminal.ExtendedKeyMapper); ok {
		mapper.MapAllKeys(true)
	}

	s, err := screen.New(backend, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating screen: %v\n", err)
		os.Exit(1)
	}

	entries := make([]string, 0, maxLog)
	addEntry := func(line string) {
		if len(entries) >= maxLog {
			copy(entries, entries[1:])
			entries = entries[:maxLog-1]
		}
		entries = append(entries, line)
	}

	for {
		s.Centre(fmt.Sprintf("input probe (%s backend) - press q to quit", kind),
			0, terminal.ColourWhite, terminal.AttrBold, nil)

		for ev := s.GetEvent(); ev != nil; ev = s.GetEvent() {
			switch e := ev.(type) {
			case event.KeyboardEvent:
				if e.KeyCode == 'q' {
					return
				}
				addEntry(describeKey(e.KeyCode))
			case event.MouseEvent:
				addEntry(fmt.Sprintf("mouse (%d,%d) buttons=%s", e.X, e.Y, describeButtons(e.Buttons)))
			}
		}

		if s.HasResized() {
			addEntry("resize")
		}

		for i := 0; i < maxLog; i++ {
			line := ""
			if i < len(entries) {
				line = entries[i]
			}
			s.PrintAt(fmt.Sprintf("%-60s", line), 2, 2+i,
				terminal.ColourGreen, 0, terminal.ColourBlack, false)
		}
		s.Refresh()
		time.Sleep(20 * time.Millisecond)
	}
}

func describeKey(code int) string {
	if name := event.KeyName(code); name != "" {
		return fmt.Sprintf("key %-14s code=%d", name, code)
	}
	if code >= 0x20 && code != 0x7f {
		return fmt.Sprintf("key %-14q code=%d", code, code)
	}
	return fmt.Sprintf("key %-14s code=%d", "control", code)
}

func describeButtons(buttons int) string {
	if buttons == 0 {
		return "none"
	}
	out := ""
	if buttons&event.LeftClick != 0 {
		out += "L"
	}
	if buttons&event.RightClick != 0 {
		out += "R"
	}
	if buttons&event.DoubleClick != 0 {
		out += "2"
	}
	return out
}
