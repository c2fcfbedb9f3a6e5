// Package watchutil re-parses a Gularen document whenever its source
// file changes on disk, backing `gularen watch`. Beyond debouncing the
// raw fsnotify events it owns the parse itself: each quiet period ends
// in a full re-parse, and deliveries that would repeat the previous
// document tree (whitespace-only saves, editor backup shuffles that
// restore identical bytes) are suppressed by structural comparison.
package watchutil

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gularen-lang/gularen/gularen"
)

// defaultDebounce is the default debounce duration for file events.
// Editors often perform multiple writes in rapid succession.
const defaultDebounce = 150 * time.Millisecond

// Watcher re-parses a single Gularen document on every debounced file
// change and delivers each structurally new tree. The document channel
// holds only the most recent tree: a slow consumer skips intermediate
// saves rather than replaying them.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	opts     []gularen.Option
	docs     chan *gularen.Node
	errors   chan error
	done     chan struct{}
	debounce time.Duration

	mu     sync.Mutex
	last   *gularen.Node
	closed bool
}

// New parses filePath once to seed the baseline document, then starts
// watching it. The file must exist and be readable at creation time;
// opts are applied to the seed parse and to every re-parse.
func New(filePath string, opts ...gularen.Option) (*Watcher, error) {
	return NewWithDebounce(filePath, defaultDebounce, opts...)
}

// NewWithDebounce creates a Watcher with a custom debounce duration.
func NewWithDebounce(filePath string, debounce time.Duration, opts ...gularen.Option) (*Watcher, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	doc, err := gularen.ParseFile(absPath, opts...)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors that save via
	// rename-and-replace would otherwise silently detach the watch.
	dir := filepath.Dir(absPath)
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()

		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		filePath: absPath,
		opts:     opts,
		docs:     make(chan *gularen.Node, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		debounce: debounce,
		last:     doc,
	}

	go w.loop()

	return w, nil
}

// Current returns the most recently parsed document: the seed parse at
// creation time, or the last tree delivered on Documents since.
func (w *Watcher) Current() *gularen.Node {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.last
}

// Documents returns a channel that receives each structurally new
// document tree produced by a re-parse. Saves that re-produce the
// previous tree are not delivered.
func (w *Watcher) Documents() <-chan *gularen.Node {
	return w.docs
}

// Errors returns a channel that receives re-parse and fsnotify errors.
// Buffered with capacity 1.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and releases resources. Safe to call more
// than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)

	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer     *time.Timer
		timerChan <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}

			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			timer, timerChan = w.handleEvent(event, timer, timerChan)

		case <-timerChan:
			w.reparse()
			timer = nil
			timerChan = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleEvent(
	event fsnotify.Event,
	timer *time.Timer,
	timerChan <-chan time.Time,
) (*time.Timer, <-chan time.Time) {
	if !w.isWatchedFile(event.Name) {
		return timer, timerChan
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return timer, timerChan
	}

	if timer == nil {
		timer = time.NewTimer(w.debounce)

		return timer, timer.C
	}

	w.resetTimer(timer)

	return timer, timerChan
}

// reparse runs once per quiet period. A read failure is surfaced as an
// error; a tree structurally equal to the last delivered one is
// dropped, so consumers only ever see documents that changed.
func (w *Watcher) reparse() {
	doc, err := gularen.ParseFile(w.filePath, w.opts...)
	if err != nil {
		w.sendError(err)

		return
	}

	w.mu.Lock()
	same := doc.Equal(w.last)
	if !same {
		w.last = doc
	}
	w.mu.Unlock()

	if same {
		return
	}
	w.sendDoc(doc)
}

func (w *Watcher) resetTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(w.debounce)
}

func (w *Watcher) isWatchedFile(eventPath string) bool {
	absEventPath, err := filepath.Abs(eventPath)
	if err != nil {
		return false
	}

	return absEventPath == w.filePath
}

// sendDoc delivers doc, displacing an undelivered older tree if the
// consumer has fallen behind: the channel always holds the newest
// document.
func (w *Watcher) sendDoc(doc *gularen.Node) {
	select {
	case w.docs <- doc:
	default:
		select {
		case <-w.docs:
		default:
		}
		select {
		case w.docs <- doc:
		default:
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
