package shaders

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeated events for the same file within this window;
// editors often write a file in several steps.
const debounce = 100 * time.Millisecond

// Watcher reports edits to shader files in a directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    sync.WaitGroup
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	watcher.done.Add(1)
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.done.Wait()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll returns true if any shader changed since the last call. It never blocks.
func (w *Watcher) Poll() (changed bool, err error) {
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return changed, err
			}
			changed = true
		case e, ok := <-w.Errors:
			if !ok {
				return changed, err
			}
			if err == nil {
				err = e
			}
		default:
			return changed, err
		}
	}
}

func (w *Watcher) run() {
	defer w.done.Done()
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsShaderFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsShaderFile reports whether path has a shader extension.
func IsShaderFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vs", ".fs", ".vert", ".frag", ".glsl":
		return true
	default:
		return false
	}
}
