package annotate

import "github.com/matzehuels/depsize/pkg/manifest"

// Painter is the host surface that displays inline labels. Implementations
// register a named label style with their host (an editor decoration, a
// terminal renderer) and paint it at the given anchors.
type Painter interface {
	// Paint displays text at every anchor position within the view.
	// One call is issued per distinct display string per pass; an empty
	// position set clears every label previously painted with that text.
	Paint(view, text string, positions []manifest.Position)
}

// Config exposes the host's boolean configuration lookup. The enabled flag
// is consulted on every event so it can change mid-session: while disabled,
// no parsing or resolution occurs and existing labels are left untouched.
type Config interface {
	Enabled() bool
}

// ConfigFunc adapts a plain function to the Config interface.
type ConfigFunc func() bool

// Enabled reports the current flag value.
func (f ConfigFunc) Enabled() bool { return f() }

// StaticConfig returns a Config fixed at v.
func StaticConfig(v bool) Config { return ConfigFunc(func() bool { return v }) }
