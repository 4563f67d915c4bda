// Package manifest extracts declared dependency entries from package.json
// text while preserving their source positions.
//
// Parsing is a two-pass affair. The text is first parsed structurally to
// obtain the declared name sets for the dependency and devDependency
// categories; the raw text is then re-scanned line by line for
// "key": "value" pairs, using the parsed sets as a filter. A structural
// walk alone cannot recover line positions for nested keys without a full
// JSON object-path walker, and the re-scan is correct as long as
// dependency names do not double as other JSON keys elsewhere in the
// document (an accepted limitation).
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// WildcardVersion is the sentinel recorded when a dependency declares an
// empty version, resolved against the registry's latest published tag.
const WildcardVersion = "*"

// ErrMalformed reports that the document is not valid JSON. This is an
// expected, frequent condition (it fires on every keystroke mid-edit) and
// callers treat it as "no entries this pass", never as a user-facing error.
var ErrMalformed = errors.New("manifest is not valid JSON")

// Filename is the manifest file name this parser handles.
const Filename = "package.json"

// IsManifest reports whether the given file name is a dependency manifest.
func IsManifest(name string) bool {
	return strings.EqualFold(name, Filename)
}

// Position is a text anchor: zero-based line index and the column at which
// a label should attach. Columns count runes from the start of the line.
type Position struct {
	Line int
	Col  int
}

// Entry is one declared package name/version pair with its text anchor.
// Entries are regenerated on every parse pass and never persisted.
type Entry struct {
	Name    string
	Version string // WildcardVersion when the declared value is empty
	Anchor  Position
}

// Result holds the entries of one parse pass, split by category.
type Result struct {
	Direct []Entry // dependencies
	Dev    []Entry // devDependencies
}

// Entries returns all entries of the pass, direct dependencies first.
func (r Result) Entries() []Entry {
	out := make([]Entry, 0, len(r.Direct)+len(r.Dev))
	out = append(out, r.Direct...)
	out = append(out, r.Dev...)
	return out
}

// pairRE matches a "key": "value" pair on a single line.
var pairRE = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"\s*:\s*"((?:[^"\\]|\\.)*)"`)

type packageFile struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Parse extracts dependency entries from the full text of a package.json
// document. Invalid JSON returns an empty Result and ErrMalformed; the
// document may simply be mid-edit.
//
// Each entry is anchored at the end of the text line containing its
// declaration, not at the match itself, so painted labels trail the line.
// If a name appears in both categories it is recorded once per scanned
// occurrence, attributed to the direct-dependency set first.
func Parse(text string) (Result, error) {
	var pkg packageFile
	if err := json.Unmarshal([]byte(text), &pkg); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var res Result
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		anchor := Position{Line: i, Col: utf8.RuneCountInString(line)}

		for _, m := range pairRE.FindAllStringSubmatch(line, -1) {
			name := m[1]
			if declared, ok := pkg.Dependencies[name]; ok {
				res.Direct = append(res.Direct, newEntry(name, declared, anchor))
			} else if declared, ok := pkg.DevDependencies[name]; ok {
				res.Dev = append(res.Dev, newEntry(name, declared, anchor))
			}
		}
	}
	return res, nil
}

func newEntry(name, version string, anchor Position) Entry {
	if version == "" {
		version = WildcardVersion
	}
	return Entry{Name: name, Version: version, Anchor: anchor}
}
