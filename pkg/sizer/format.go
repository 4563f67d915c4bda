package sizer

import (
	"fmt"
	"math"
)

// Unknown is the degraded display sentinel used whenever a size cannot be
// resolved. It is painted like any other label so failures stay
// non-intrusive.
const Unknown = "—"

const (
	kib = 1024
	mib = 1024 * 1024
)

// FormatBytes renders a byte count for display. The unit suffixes read as
// decimal ("kB", "MB") but the arithmetic is 1024-based; both are kept for
// compatibility with the labels users already know. The kilobyte branch
// truncates the single decimal so values just below the megabyte threshold
// never display as "1024.0 kB".
func FormatBytes(n int64) string {
	switch {
	case n >= mib:
		return fmt.Sprintf("%.1f MB", float64(n)/mib)
	case n >= kib:
		return fmt.Sprintf("%.1f kB", math.Floor(float64(n)/kib*10)/10)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
