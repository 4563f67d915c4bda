package manifest

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	text := `{
  "name": "demo",
  "dependencies": {
    "lodash": "4.17.21",
    "@types/node": "^20.1.0"
  },
  "devDependencies": {
    "jest": ""
  }
}`

	res, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if len(res.Direct) != 2 {
		t.Fatalf("len(Direct) = %d, want 2", len(res.Direct))
	}
	if len(res.Dev) != 1 {
		t.Fatalf("len(Dev) = %d, want 1", len(res.Dev))
	}

	lodash := res.Direct[0]
	if lodash.Name != "lodash" || lodash.Version != "4.17.21" {
		t.Errorf("Direct[0] = %+v, want lodash@4.17.21", lodash)
	}
	// Anchored at the end of the line containing the declaration,
	// not at the match itself.
	if lodash.Anchor.Line != 3 {
		t.Errorf("lodash anchor line = %d, want 3", lodash.Anchor.Line)
	}
	if want := len(`    "lodash": "4.17.21",`); lodash.Anchor.Col != want {
		t.Errorf("lodash anchor col = %d, want %d", lodash.Anchor.Col, want)
	}

	scoped := res.Direct[1]
	if scoped.Name != "@types/node" || scoped.Version != "^20.1.0" {
		t.Errorf("Direct[1] = %+v, want @types/node@^20.1.0", scoped)
	}

	// Empty declared version defaults to the wildcard sentinel.
	if res.Dev[0].Version != WildcardVersion {
		t.Errorf("Dev[0].Version = %q, want %q", res.Dev[0].Version, WildcardVersion)
	}
}

func TestParse_EveryDeclaredNameAnchored(t *testing.T) {
	text := `{
  "dependencies": {"a": "1.0.0", "b": "2.0.0"},
  "devDependencies": {"c": "3.0.0"}
}`

	res, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	seen := map[string]int{}
	for _, e := range res.Entries() {
		seen[e.Name]++
		if e.Anchor.Col == 0 {
			t.Errorf("entry %s has empty anchor", e.Name)
		}
	}
	for _, name := range []string{"a", "b", "c"} {
		if seen[name] != 1 {
			t.Errorf("entries for %s = %d, want 1", name, seen[name])
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"mid-edit", `{"dependencies": {"lodash": "4.17`},
		{"empty", ""},
		{"not json", "hello world"},
		{"trailing comma", `{"dependencies": {"a": "1.0.0",}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.text)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error = %v, want ErrMalformed", err)
			}
			if len(res.Direct) != 0 || len(res.Dev) != 0 {
				t.Errorf("entries = %d/%d, want 0/0", len(res.Direct), len(res.Dev))
			}
		})
	}
}

func TestParse_NameInBothCategories(t *testing.T) {
	// Each scanned occurrence is recorded once, attributed to the
	// direct-dependency set first.
	text := `{
  "dependencies": {"shared": "1.0.0"},
  "devDependencies": {"shared": "1.0.0"}
}`

	res, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(res.Direct) != 2 {
		t.Errorf("len(Direct) = %d, want 2 (both occurrences attributed direct)", len(res.Direct))
	}
	if len(res.Dev) != 0 {
		t.Errorf("len(Dev) = %d, want 0", len(res.Dev))
	}
}

func TestParse_IgnoresUndeclaredPairs(t *testing.T) {
	text := `{
  "name": "demo",
  "scripts": {"build": "tsc"},
  "dependencies": {"lodash": "4.17.21"}
}`

	res, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := len(res.Entries()); got != 1 {
		t.Fatalf("entries = %d, want 1", got)
	}
	if res.Direct[0].Name != "lodash" {
		t.Errorf("entry = %q, want lodash", res.Direct[0].Name)
	}
}

func TestIsManifest(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"package.json", true},
		{"Package.JSON", true},
		{"package-lock.json", false},
		{"composer.json", false},
	}
	for _, tt := range tests {
		if got := IsManifest(tt.name); got != tt.want {
			t.Errorf("IsManifest(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
