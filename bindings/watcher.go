package bindings

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("bindings: watcher closed")

// DefaultDebounce is the quiet period after the last file event before the
// watcher re-parses. Editors often write a file several times per save.
const DefaultDebounce = 100 * time.Millisecond

// Reload carries the result of re-parsing the watched file.
type Reload struct {
	Entries []Entry
	Err     error
}

// Watcher re-parses a bindings file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself, because most
// editors replace the file on save and a direct watch would go stale. Files
// ending in .lua parse as Lua scripts, everything else as TOML.
//
// The intended pairing on the game side: swap the tracker's configuration
// from the new entries, then call ClearInputs so no stale hold survives the
// rebind.
type Watcher struct {
	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	path   string
	base   string
	lua    bool
	bounce time.Duration

	reloads chan Reload
	closeCh chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a changed file is re-parsed.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.bounce = d
	}
}

// NewWatcher starts watching the given bindings file.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    absPath,
		base:    filepath.Base(absPath),
		lua:     strings.EqualFold(filepath.Ext(absPath), ".lua"),
		bounce:  DefaultDebounce,
		reloads: make(chan Reload, 8),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Reloads returns the channel of re-parse results.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops the watcher. The reloads channel is closed once the event loop
// has drained.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	close(w.reloads)
	return err
}

// loop watches for changes to the target file and re-parses after a quiet
// period.
func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.bounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.bounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: err})

		case <-fire:
			fire = nil
			w.send(w.reload())
		}
	}
}

func (w *Watcher) reload() Reload {
	var entries []Entry
	var err error
	if w.lua {
		entries, err = LoadLua(w.path)
	} else {
		entries, err = Load(w.path)
	}
	return Reload{Entries: entries, Err: err}
}

// send delivers a reload without blocking forever on a slow consumer.
func (w *Watcher) send(r Reload) {
	select {
	case w.reloads <- r:
	case <-w.closeCh:
	}
}
