package event

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports writes to the catalog file, debounced so editors that
// write in bursts trigger a single reload.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	onChange func(string)
	mu       sync.Mutex
	pending  map[string]*time.Timer
	done     chan struct{}
}

const debounceDelay = 100 * time.Millisecond

func NewFileWatcher(onChange func(string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		onChange: onChange,
		pending:  make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}

	go fw.run()
	return fw, nil
}

func (fw *FileWatcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	// fsnotify watches directories more reliably than files across
	// rename-based saves.
	return fw.watcher.Add(filepath.Dir(abs))
}

func (fw *FileWatcher) run() {
	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			fw.mu.Lock()
			if timer, exists := fw.pending[ev.Name]; exists {
				timer.Stop()
			}
			name := ev.Name
			fw.pending[name] = time.AfterFunc(debounceDelay, func() {
				fw.mu.Lock()
				delete(fw.pending, name)
				fw.mu.Unlock()
				if fw.onChange != nil {
					fw.onChange(name)
				}
			})
			fw.mu.Unlock()

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
