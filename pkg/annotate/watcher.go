package annotate

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/depsize/pkg/manifest"
)

// FileWatcher is an EventSource backed by filesystem notifications for a
// single document. It watches the document's parent directory rather than
// the file itself, since editors typically save via rename-and-replace,
// which would otherwise drop the watch.
type FileWatcher struct {
	path    string
	events  chan Event
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// WatchFile creates a watcher for the document at path and emits an
// initial open event with its current contents.
func WatchFile(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &FileWatcher{
		path:    abs,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
		watcher: fw,
	}
	w.emit(EventOpen)
	go w.loop()
	return w, nil
}

// Events returns the channel of document events. It is closed by Stop.
func (w *FileWatcher) Events() <-chan Event { return w.events }

// Stop closes the underlying watcher and the event channel.
func (w *FileWatcher) Stop() {
	w.watcher.Close()
	<-w.done // wait for loop to exit
	close(w.events)
}

func (w *FileWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.emit(EventChange)
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next save retriggers.
		}
	}
}

// emit reads the document and publishes an event. Read failures are
// skipped: the file may be mid-rename, and the next notification follows
// shortly.
func (w *FileWatcher) emit(kind EventKind) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return
	}
	select {
	case w.events <- Event{
		Kind:     kind,
		View:     w.path,
		Text:     string(data),
		Manifest: manifest.IsManifest(filepath.Base(w.path)),
	}:
	default:
		// Drop when the consumer lags; a newer event supersedes anyway.
	}
}
