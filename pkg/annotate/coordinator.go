// Package annotate drives the fetch-cache-render pipeline: it reacts to
// document events, debounces rapid edits, resolves all entries of a pass
// concurrently, groups anchors by display string, and issues paint and
// clear instructions to the host surface.
package annotate

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depsize/pkg/manifest"
	"github.com/matzehuels/depsize/pkg/sizer"
)

// DefaultDebounce is the quiet period after the last edit before a
// scheduled pass runs.
const DefaultDebounce = 400 * time.Millisecond

// Options configures a Coordinator.
type Options struct {
	// Resolver resolves entry sizes. Required.
	Resolver *sizer.Resolver

	// Painter receives paint/clear instructions. Required.
	Painter Painter

	// Config supplies the enabled flag. Defaults to always enabled.
	Config Config

	// Debounce overrides DefaultDebounce (tests use short periods).
	Debounce time.Duration

	// Logger receives pass diagnostics.
	Logger *log.Logger
}

// Coordinator owns the per-view annotation state machine:
//
//	Idle → Scheduled(debounced) → Resolving → Rendered → Idle
//
// Debounce state is held per subscribed view, so edits in one document
// never cancel a pass pending for another. Only a not-yet-fired timer is
// cancellable; an in-flight pass may still complete and paint after a
// newer edit, and the next cycle corrects the display.
type Coordinator struct {
	resolver *sizer.Resolver
	painter  Painter
	config   Config
	debounce time.Duration
	logger   *log.Logger

	mu    sync.Mutex
	views map[string]*viewState
}

type viewState struct {
	timer      *time.Timer
	lastGroups map[string][]manifest.Position
}

// New creates a Coordinator from opts.
func New(opts Options) *Coordinator {
	if opts.Config == nil {
		opts.Config = StaticConfig(true)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Coordinator{
		resolver: opts.Resolver,
		painter:  opts.Painter,
		config:   opts.Config,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		views:    make(map[string]*viewState),
	}
}

// Run consumes events until the channel closes or ctx is cancelled.
// It blocks; callers typically run it in its own goroutine.
func (c *Coordinator) Run(ctx context.Context, events <-chan Event) {
	defer c.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			c.Handle(ctx, e)
		}
	}
}

// Handle processes a single event. Exposed so hosts with their own event
// loop can drive the coordinator directly.
func (c *Coordinator) Handle(ctx context.Context, e Event) {
	if !c.config.Enabled() {
		// Disabled: no parsing or resolution, existing labels untouched.
		return
	}
	if !e.Manifest {
		c.clearView(e.View)
		return
	}

	switch e.Kind {
	case EventOpen, EventFocus:
		c.cancelPending(e.View)
		go c.runPass(ctx, e.View, e.Text)
	case EventChange:
		c.schedule(ctx, e.View, e.Text)
	}
}

// schedule (re)arms the view's debounce timer: a rapid edit sequence
// collapses into one pass after the quiet period.
func (c *Coordinator) schedule(ctx context.Context, view, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vs := c.viewLocked(view)
	if vs.timer != nil {
		vs.timer.Stop()
	}
	vs.timer = time.AfterFunc(c.debounce, func() {
		c.runPass(ctx, view, text)
	})
}

func (c *Coordinator) cancelPending(view string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	vs := c.viewLocked(view)
	if vs.timer != nil {
		vs.timer.Stop()
		vs.timer = nil
	}
}

// clearView paints an empty anchor set for every group previously painted
// in the view and forgets its state.
func (c *Coordinator) clearView(view string) {
	c.mu.Lock()
	vs, ok := c.views[view]
	if ok {
		if vs.timer != nil {
			vs.timer.Stop()
		}
		delete(c.views, view)
	}
	c.mu.Unlock()

	if !ok {
		return
	}
	for text := range vs.lastGroups {
		c.painter.Paint(view, text, nil)
	}
}

// runPass executes one full pipeline pass for a view and paints the
// result. Text that fails to parse (expected mid-edit) produces an empty
// group set, so previously painted labels are cleared rather than
// lingering. Panics are recovered and logged; a pass must never take the
// host down.
func (c *Coordinator) runPass(ctx context.Context, view, text string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("annotation pass failed", "view", view, "panic", r)
		}
	}()

	start := time.Now()
	groups := Pass(ctx, c.resolver, filepath.Dir(view), text)

	c.render(view, groups)
	c.logger.Debug("annotation pass complete",
		"view", view,
		"groups", len(groups),
		"duration", time.Since(start).Round(time.Millisecond))
}

// render paints the current groups and explicitly clears any previously
// painted display string that is absent from this pass.
func (c *Coordinator) render(view string, groups map[string][]manifest.Position) {
	c.mu.Lock()
	vs := c.viewLocked(view)
	prev := vs.lastGroups
	vs.lastGroups = groups
	c.mu.Unlock()

	for text, positions := range groups {
		c.painter.Paint(view, text, positions)
	}
	for text := range prev {
		if _, ok := groups[text]; !ok {
			c.painter.Paint(view, text, nil)
		}
	}
}

// viewLocked returns the state for view, creating it if needed.
// Callers must hold c.mu.
func (c *Coordinator) viewLocked(view string) *viewState {
	vs, ok := c.views[view]
	if !ok {
		vs = &viewState{}
		c.views[view] = vs
	}
	return vs
}

func (c *Coordinator) stopTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, vs := range c.views {
		if vs.timer != nil {
			vs.timer.Stop()
		}
	}
}
