// Package main is a terminal playground for the framepress trackers.
//
// It drives an event tracker from tcell key events at a fixed frame rate and
// renders per-control press times live. Terminals report key presses but not
// releases, so an input is considered released once it has produced no event
// for a short window of frames; holding a key relies on terminal auto-repeat.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/framepress"
	"github.com/dshills/framepress/bindings"
	"github.com/dshills/framepress/device"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

type options struct {
	config       string
	fps          int
	releaseAfter uint64
}

func parseFlags() options {
	opts := options{}
	flag.StringVar(&opts.config, "config", "", "bindings file (.toml or .lua); watched for live rebinding")
	flag.IntVar(&opts.fps, "fps", 60, "frames per second")
	flag.Uint64Var(&opts.releaseAfter, "release-after", 8, "frames without repeat before an input counts as released")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("framepress-demo %s\n", version)
		os.Exit(0)
	}
	if opts.fps <= 0 {
		opts.fps = 60
	}
	return opts
}

// defaultEntries is the built-in configuration used when no -config is given.
func defaultEntries() []bindings.Entry {
	return []bindings.Entry{
		{Input: "KeyW", Control: "move-up", Device: "keyboard"},
		{Input: "ArrowUp", Control: "move-up", Device: "keyboard"},
		{Input: "KeyS", Control: "move-down", Device: "keyboard"},
		{Input: "ArrowDown", Control: "move-down", Device: "keyboard"},
		{Input: "KeyA", Control: "move-left", Device: "keyboard"},
		{Input: "ArrowLeft", Control: "move-left", Device: "keyboard"},
		{Input: "KeyD", Control: "move-right", Device: "keyboard"},
		{Input: "ArrowRight", Control: "move-right", Device: "keyboard"},
		{Input: "Space", Control: "jump", Device: "keyboard"},
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	entries := defaultEntries()
	if opts.config != "" {
		loaded, err := loadEntries(opts.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		entries = loaded
	}

	tracker := framepress.NewEventTracker(bindings.ResolveStrings(entries)...)
	metrics := framepress.NewMetrics()
	tracker.SetMetrics(metrics)

	// Transition log shown at the bottom of the screen.
	var transitions []string
	logTransition := func(format string, args ...interface{}) {
		transitions = append(transitions, fmt.Sprintf(format, args...))
		if len(transitions) > 5 {
			transitions = transitions[len(transitions)-5:]
		}
	}
	hooks := framepress.NewHookManager[string]()
	hooks.RegisterNamed(framepress.LoggingHook[string]{Logger: logTransition}, "demo-log")
	tracker.SetHooks(hooks)

	// The keyboard registers as a device so F9 can simulate a disconnect.
	devices := device.NewRegistry[string]()
	keyboardID := attachKeyboard(devices, entries)
	keyboardAttached := true

	var watcher *bindings.Watcher
	if opts.config != "" {
		w, err := bindings.NewWatcher(opts.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching %s: %v\n", opts.config, err)
			return 1
		}
		defer w.Close()
		watcher = w
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()

	var frame uint64
	lastSeen := make(map[string]uint64)
	var reloads <-chan bindings.Reload
	if watcher != nil {
		reloads = watcher.Reloads()
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0
			}
			kev, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			switch kev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0
			case tcell.KeyF9:
				if keyboardAttached {
					devices.DetachInto(keyboardID, tracker)
					tracker.ClearInputs()
					logTransition("[demo] keyboard detached")
				} else {
					applyEntries(tracker, entries)
					keyboardID = attachKeyboard(devices, entries)
					logTransition("[demo] keyboard reattached")
				}
				keyboardAttached = !keyboardAttached
				continue
			}
			input := inputName(kev)
			if input == "" {
				continue
			}
			tracker.InputDown(input)
			lastSeen[input] = frame

		case r := <-reloads:
			if r.Err != nil {
				logTransition("[demo] reload failed: %v", r.Err)
				continue
			}
			entries = r.Entries
			applyEntries(tracker, entries)
			tracker.ClearInputs()
			logTransition("[demo] bindings reloaded (%d rows)", len(entries))

		case <-ticker.C:
			frame++
			// No key-up in terminals: expire inputs that stopped repeating.
			for input, seen := range lastSeen {
				if frame-seen > opts.releaseAfter {
					tracker.InputUp(input)
					delete(lastSeen, input)
				}
			}
			tracker.Update()
			render(screen, tracker, metrics, transitions, keyboardAttached)
		}
	}
}

func loadEntries(path string) ([]bindings.Entry, error) {
	if len(path) > 4 && path[len(path)-4:] == ".lua" {
		return bindings.LoadLua(path)
	}
	return bindings.Load(path)
}

// applyEntries rewrites the tracker's live configuration from entries,
// preserving first-wins on duplicate inputs.
func applyEntries(tracker *framepress.EventTracker[string, string], entries []bindings.Entry) {
	cfg := tracker.Config()
	clear(cfg)
	for _, b := range bindings.ResolveStrings(entries) {
		if _, bound := cfg[b.Input]; !bound {
			cfg[b.Input] = b.Control
		}
	}
}

func attachKeyboard(devices *device.Registry[string], entries []bindings.Entry) uuid.UUID {
	var inputs []string
	for dev, owned := range bindings.ByDevice(entries) {
		if dev == "keyboard" || dev == "" {
			inputs = append(inputs, owned...)
		}
	}
	return devices.Attach("keyboard", inputs)
}

// inputName translates a tcell key event into the input identities used by
// the bindings files.
func inputName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "Space"
		}
		return fmt.Sprintf("Key%c", unicode.ToUpper(r))
	default:
		return ""
	}
}

func render(screen tcell.Screen, tracker *framepress.EventTracker[string, string], metrics *framepress.Metrics, transitions []string, keyboardAttached bool) {
	screen.Clear()

	drawString(screen, 0, 0, tcell.StyleDefault.Bold(true), "framepress demo — WASD/arrows/space, F9 toggles keyboard device, Esc quits")

	ctrls := tracker.Controls()
	sort.Strings(ctrls)

	row := 2
	for _, ctrl := range ctrls {
		frames := tracker.PressTime(ctrl)
		style := tcell.StyleDefault
		marker := " "
		switch {
		case tracker.JustPressed(ctrl):
			style = style.Foreground(tcell.ColorYellow).Bold(true)
			marker = "*"
		case tracker.IsDown(ctrl):
			style = style.Foreground(tcell.ColorGreen)
			marker = "+"
		}
		bar := ""
		for i := uint32(0); i < frames && i < 40; i++ {
			bar += "#"
		}
		drawString(screen, 0, row, style, fmt.Sprintf("%s %-12s %4d %s", marker, ctrl, frames, bar))
		row++
	}

	if !keyboardAttached {
		drawString(screen, 0, row+1, tcell.StyleDefault.Foreground(tcell.ColorRed), "keyboard detached — press F9 to reattach")
	}

	snap := metrics.Snapshot()
	stats := fmt.Sprintf("frames %d  events %d  unmapped %d  clears %d  avg update %v",
		snap.FramesTotal, snap.InputEventsTotal, snap.UnmappedTotal, snap.ClearsTotal, snap.AvgFrameLatency)
	drawString(screen, 0, row+3, tcell.StyleDefault.Dim(true), stats)

	for i, line := range transitions {
		drawString(screen, 0, row+5+i, tcell.StyleDefault.Dim(true), line)
	}

	screen.Show()
}

func drawString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
