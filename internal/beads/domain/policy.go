package domain

import (
	"fmt"
	"strings"
)

// TieBreak decides which bead wins when two candidates are equally close.
type TieBreak string

const (
	// TieBreakLast keeps the last equally-close candidate in pool order.
	// A candidate replaces the current best when its distance is <= the minimum.
	TieBreakLast TieBreak = "last"
	// TieBreakFirst keeps the first equally-close candidate in pool order.
	TieBreakFirst TieBreak = "first"
)

// ParseTieBreak parses a policy name. Empty selects TieBreakLast.
func ParseTieBreak(s string) (TieBreak, error) {
	switch TieBreak(strings.ToLower(strings.TrimSpace(s))) {
	case "", TieBreakLast:
		return TieBreakLast, nil
	case TieBreakFirst:
		return TieBreakFirst, nil
	}
	return "", fmt.Errorf("unknown tie-break policy %q (want %q or %q)", s, TieBreakLast, TieBreakFirst)
}

// Prefers reports whether a candidate at distance d should replace the current
// best at distance best.
func (p TieBreak) Prefers(d, best float64) bool {
	if p == TieBreakFirst {
		return d < best
	}
	return d <= best
}
