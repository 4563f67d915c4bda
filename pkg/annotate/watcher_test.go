package annotate

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func nextEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case e, ok := <-events:
		if !ok {
			t.Fatal("event channel closed")
		}
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestWatchFileEmitsOpenThenChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(`{"dependencies":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer w.Stop()

	open := nextEvent(t, w.Events())
	if open.Kind != EventOpen {
		t.Fatalf("first event kind = %v, want EventOpen", open.Kind)
	}
	if !open.Manifest {
		t.Error("open event Manifest = false, want true")
	}
	if open.Text != `{"dependencies":{}}` {
		t.Errorf("open event text = %q", open.Text)
	}

	updated := `{"dependencies":{"lodash":"4.17.21"}}`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	// Editors may produce several write notifications per save; accept any
	// change event carrying the new contents.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		e := nextEvent(t, w.Events())
		if e.Kind == EventChange && e.Text == updated {
			return
		}
	}
	t.Fatal("no change event with updated contents")
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer w.Stop()

	nextEvent(t, w.Events()) // initial open

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-w.Events():
		t.Fatalf("unexpected event %v for sibling write", e.Kind)
	case <-time.After(200 * time.Millisecond):
	}
}
