package sizer

import (
	"regexp"
	"strings"
)

// exactRE matches an exact semantic version: digits.digits.digits,
// optionally followed by a prerelease or build suffix.
var exactRE = regexp.MustCompile(`^\d+\.\d+\.\d+(?:[-+].*)?$`)

// IsExact reports whether spec pins a single published version
// ("4.17.21", "1.0.0-beta.1") rather than a wildcard or range
// ("^4.17.21", "~1.2", "*", ">=2").
func IsExact(spec string) bool {
	return exactRE.MatchString(spec)
}

// IsLocal reports whether spec denotes a local file reference, resolved by
// measuring the installed directory instead of querying the registry.
func IsLocal(spec string) bool {
	return strings.HasPrefix(spec, "file:")
}
