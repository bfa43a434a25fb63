package raw

import (
	"fmt"
	"sort"
)

// NewPlan orders local paths for upload: sorted by path for determinism,
// with any beep asset moved to the end when beepLast is set. Relative order
// among multiple beep paths is preserved.
func NewPlan(paths []string, beepLast bool) []string {
	plan := make([]string, len(paths))
	copy(plan, paths)
	sort.Strings(plan)

	if !beepLast {
		return plan
	}

	ordered := plan[:0:len(plan)]
	var beeps []string
	for _, p := range plan {
		if IsBeep(p) {
			beeps = append(beeps, p)
			continue
		}
		ordered = append(ordered, p)
	}
	return append(ordered, beeps...)
}

// HasBeep reports whether any path in the list refers to the beep asset.
func HasBeep(paths []string) bool {
	for _, p := range paths {
		if IsBeep(p) {
			return true
		}
	}
	return false
}

// HumanSize renders a byte count as a human-readable string.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f%cB", float64(n)/float64(div), "KMGT"[exp])
}
