package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is the quiet period after the last change before a reload
// is signalled.
const reloadDebounce = 100 * time.Millisecond

// configWatcher reports changes to a single config file. It watches the
// containing directory so editors that replace the file on save are seen.
// A burst of changes yields one signal, sent once the file has been quiet
// for reloadDebounce.
type configWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	timer   *time.Timer
	Events  chan struct{}
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func newConfigWatcher(path string) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	cw := &configWatcher{
		watcher: w,
		path:    abs,
		timer:   timer,
		Events:  make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (w *configWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		w.timer.Stop()
		err = w.watcher.Close()
	})
	return err
}

func (w *configWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.timer.Reset(reloadDebounce)
		case <-w.timer.C:
			select {
			case <-w.closeCh:
				return
			default:
			}
			// Coalesce: one pending reload is enough.
			select {
			case w.Events <- struct{}{}:
			default:
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
			w.timer.Stop()
			return
		}
	}
}
