// Package watch re-runs analysis whenever project files change.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	".observer":    true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
}

const debounce = 300 * time.Millisecond

// Watcher debounces filesystem events into analysis triggers.
type Watcher struct {
	fsw *fsnotify.Watcher
}

func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw}, nil
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Watch registers the project tree and calls onChange after each debounced
// burst of events. It blocks until stop is closed or the watcher fails.
func (w *Watcher) Watch(root string, stop <-chan struct{}, onChange func()) error {
	if err := w.addRecursive(root); err != nil {
		return err
	}

	var timer *time.Timer
	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ignored(ev.Name) {
				continue
			}
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !skipDirs[info.Name()] {
					_ = w.addRecursive(ev.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, onChange)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return w.fsw.Add(path)
		}
		return nil
	})
}

func ignored(name string) bool {
	sep := string(filepath.Separator)
	for dir := range skipDirs {
		if strings.Contains(name, sep+dir+sep) {
			return true
		}
	}
	return false
}
