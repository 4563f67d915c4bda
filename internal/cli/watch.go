package cli

import (
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depsize/pkg/annotate"
	"github.com/matzehuels/depsize/pkg/errors"
	"github.com/matzehuels/depsize/pkg/manifest"
)

// watchCommand creates the live watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "watch [manifest]",
		Short: "Live manifest view with sizes refreshed on save",
		Long: `Watch displays a package.json file in the terminal with size labels at
the end of every dependency line and re-annotates after each save, with
rapid save sequences collapsed into one pass after a quiet period.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.Filename
			if len(args) == 1 {
				path = args[0]
			}

			s, err := resolveSettings(cmd, &flags)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "stat manifest %s", path)
			}

			watcher, err := annotate.WatchFile(path)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "watch %s", path)
			}
			defer watcher.Stop()

			// The enabled flag is re-read on every event so it can be
			// toggled in the config file mid-session.
			cfg := annotate.ConfigFunc(func() bool {
				st, err := loadSettings(flags.configPath)
				if err != nil {
					return s.enabled
				}
				return st.enabled
			})

			// The view owns the terminal; log output would corrupt it.
			c.SetLogOutput(io.Discard)

			prog := tea.NewProgram(newWatchModel(path), tea.WithContext(cmd.Context()))
			coord := annotate.New(annotate.Options{
				Resolver: c.newResolver(s),
				Painter:  &teaPainter{program: prog},
				Config:   cfg,
				Debounce: s.debounce,
				Logger:   c.Logger,
			})

			ctx := cmd.Context()
			go func() {
				for e := range watcher.Events() {
					prog.Send(bufferMsg(e.Text))
					coord.Handle(ctx, e)
				}
			}()

			_, err = prog.Run()
			return err
		},
	}

	addRunFlags(cmd, &flags)
	return cmd
}

// =============================================================================
// Messages & Painter
// =============================================================================

// bufferMsg carries the latest manifest contents into the view.
type bufferMsg string

// paintMsg is one coordinator paint instruction: an empty position set
// clears the group.
type paintMsg struct {
	display   string
	positions []manifest.Position
}

// teaPainter forwards coordinator paint instructions into the bubbletea
// event loop. Program.Send is safe from any goroutine.
type teaPainter struct {
	program *tea.Program
}

func (p *teaPainter) Paint(view, text string, positions []manifest.Position) {
	p.program.Send(paintMsg{display: text, positions: positions})
}

// =============================================================================
// WatchModel - Live annotated manifest view
// =============================================================================

// watchModel is the bubbletea model rendering the manifest buffer with the
// currently painted label groups.
type watchModel struct {
	path   string
	text   string
	groups map[string][]manifest.Position
}

func newWatchModel(path string) watchModel {
	return watchModel{path: path, groups: make(map[string][]manifest.Position)}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case bufferMsg:
		m.text = string(msg)
	case paintMsg:
		if len(msg.positions) == 0 {
			delete(m.groups, msg.display)
		} else {
			m.groups[msg.display] = msg.positions
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.path))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("saves re-annotate  q quit"))
	b.WriteString("\n\n")
	b.WriteString(annotateBuffer(m.text, m.groups))
	b.WriteString("\n")
	return b.String()
}
