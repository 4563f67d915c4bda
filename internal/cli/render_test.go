package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/depsize/pkg/manifest"
)

func TestAnnotateBuffer(t *testing.T) {
	text := "{\n  \"dependencies\": {\n    \"lodash\": \"4.17.21\"\n  }\n}"
	groups := map[string][]manifest.Position{
		"1.4 MB": {{Line: 2, Col: 25}},
	}

	out := annotateBuffer(text, groups)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}

	if !strings.Contains(lines[2], "1.4 MB") {
		t.Errorf("anchored line = %q, want size label appended", lines[2])
	}
	if !strings.HasPrefix(lines[2], `    "lodash": "4.17.21"`) {
		t.Errorf("anchored line = %q, original text must be preserved", lines[2])
	}
	for _, i := range []int{0, 1, 3, 4} {
		if strings.Contains(lines[i], "1.4 MB") {
			t.Errorf("line %d = %q, must not carry a label", i, lines[i])
		}
	}
}

func TestAnnotateBufferMultipleLabelsPerLine(t *testing.T) {
	text := `{"dependencies": {"a": "1.0.0", "b": "2.0.0"}}`
	groups := map[string][]manifest.Position{
		"2.0 kB": {{Line: 0, Col: 46}},
		"1.0 kB": {{Line: 0, Col: 46}},
	}

	out := annotateBuffer(text, groups)

	// Labels on the same line are sorted for stable output.
	if !strings.Contains(out, "1.0 kB") || !strings.Contains(out, "2.0 kB") {
		t.Fatalf("output = %q, want both labels", out)
	}
	if strings.Index(out, "1.0 kB") > strings.Index(out, "2.0 kB") {
		t.Errorf("output = %q, want labels in sorted order", out)
	}
}

func TestAnnotateBufferNoGroups(t *testing.T) {
	text := "{\n}"
	if out := annotateBuffer(text, nil); out != text {
		t.Errorf("annotateBuffer() = %q, want unchanged text", out)
	}
}
