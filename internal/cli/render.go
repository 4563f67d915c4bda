package cli

import (
	"sort"
	"strings"

	"github.com/matzehuels/depsize/pkg/manifest"
)

// annotateBuffer appends each group's display string, dim-styled, to the
// end of every line it is anchored on. Lines without anchors pass through
// unchanged.
func annotateBuffer(text string, groups map[string][]manifest.Position) string {
	byLine := make(map[int][]string)
	for display, positions := range groups {
		for _, pos := range positions {
			byLine[pos.Line] = append(byLine[pos.Line], display)
		}
	}
	// Stable label order within a line across passes.
	for _, displays := range byLine {
		sort.Strings(displays)
	}

	lines := strings.Split(text, "\n")
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if displays, ok := byLine[i]; ok {
			b.WriteString("  " + styleLabel.Render(strings.Join(displays, "  ")))
		}
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
