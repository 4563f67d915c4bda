package annotate

// EventKind describes the host notification that triggered an event.
type EventKind int

const (
	// EventOpen fires when a document is first shown. Runs immediately,
	// bypassing the debounce.
	EventOpen EventKind = iota
	// EventChange fires on every edit. Rapid sequences collapse into a
	// single pass after the quiet period.
	EventChange
	// EventFocus fires when a view becomes active again. Runs immediately,
	// bypassing the debounce.
	EventFocus
)

// Event is one host notification about a document view.
type Event struct {
	Kind EventKind
	View string // stable view identifier (typically the document path)
	Text string // full document text at the time of the event
	// Manifest reports whether the view holds a dependency manifest.
	// Events for non-manifest views clear that view's labels instead of
	// running the pipeline.
	Manifest bool
}

// EventSource yields a sequence of document events. The channel is closed
// when the source stops.
type EventSource interface {
	Events() <-chan Event
}
