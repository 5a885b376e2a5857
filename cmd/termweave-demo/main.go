package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termweave/play"
	"github.com/lixenwraith/termweave/screen"
	"github.com/lixenwraith/termweave/terminal"
)

var (
	backendFlag = flag.String("backend", "", "Backend: terminfo, console, basic (default: auto-detect)")
	configFlag  = flag.String("config", "", "Path to a TOML options file")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/"+logFileName)
	resizeFlag  = flag.Bool("stop-on-resize", false, "Stop playback when the terminal is resized")
)

func main() {
	// Panic recovery: restore the terminal before anything hits stderr
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMWEAVE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	opts := play.DefaultOptions()
	if *configFlag != "" {
		var err error
		if opts, err = play.LoadOptions(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *backendFlag != "" {
		opts.Backend = *backendFlag
	}
	if *resizeFlag {
		opts.StopOnResize = true
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	kind := terminal.Detect()
	if opts.Backend != "" && opts.Backend != "auto" {
		k, ok := terminal.KindByName(opts.Backend)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown backend %q\n", opts.Backend)
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

	s, err := screen.New(backend, opts.BufferHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating screen: %v\n", err)
		os.Exit(1)
	}
	log.Printf("demo starting: backend=%s size=%dx%d colours=%d",
		kind, s.Width(), s.Height(), s.Colours())

	err = play.Play(s, demoScenes(s), opts)
	switch {
	case errors.Is(err, play.ErrResized):
		log.Print("playback stopped by resize")
		fmt.Fprint(os.Stderr, "\r\nterminal resized; playback stopped\r\n")
	case err != nil:
		log.Printf("playback failed: %v", err)
		fmt.Fprintf(os.Stderr, "\r\nplayback failed: %v\r\n", err)
	}
}
