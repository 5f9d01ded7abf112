package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk and
// publishes the validated result on Updates. Only the newest pending value
// is kept, so a slow consumer never blocks the watcher.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	base    *Tuning
	Updates chan *Tuning
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchTuning watches path's directory, since editors often replace the
// file instead of writing it in place. Each reload is applied on top of base,
// which should be the tuning in effect before any file was loaded.
func WatchTuning(path string, base *Tuning) (*TuningWatcher, error) {
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

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		base:    base,
		Updates: make(chan *Tuning, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *TuningWatcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var reload <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(reloadDebounce)
			reload = timer.C
		case <-reload:
			reload = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *TuningWatcher) reload() {
	t, err := LoadOnto(w.path, w.base)
	if err != nil {
		log.Printf("Warning: keeping previous tuning: %v", err)
		return
	}

	select {
	case <-w.Updates:
	default:
	}
	w.Updates <- t
	log.Printf("Reloaded tuning from %s", w.path)
}
