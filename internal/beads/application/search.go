package application

import (
	"math"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
)

// Nearest returns the bead in pool closest to target among those passing the
// brand filter. Ties are resolved by policy in pool order.
// Returns false if the pool is empty or no bead passes the filter.
func Nearest(pool []domain.Bead, target domain.RGB, brand string, policy domain.TieBreak) (domain.Match, bool) {
	return nearestExcluding(pool, target, brand, policy, nil)
}

// TopN returns up to n distinct beads closest to target, ordered from closest
// to farthest. The pool is never modified. Fewer than n matches are returned
// when the filtered pool runs out.
func TopN(pool []domain.Bead, target domain.RGB, brand string, n int, policy domain.TieBreak) []domain.Match {
	if n <= 0 {
		return nil
	}

	matches := make([]domain.Match, 0, n)
	chosen := make(map[int]struct{}, n)
	for range n {
		m, ok := nearestExcluding(pool, target, brand, policy, chosen)
		if !ok {
			break
		}
		matches = append(matches, m)
		chosen[m.Index] = struct{}{}
	}
	return matches
}

// nearestExcluding is Nearest with an exclusion set of pool indices.
func nearestExcluding(pool []domain.Bead, target domain.RGB, brand string, policy domain.TieBreak, exclude map[int]struct{}) (domain.Match, bool) {
	best := domain.Match{Distance: math.Inf(1), Index: -1}
	for i, bead := range pool {
		if !bead.MatchesBrand(brand) {
			continue
		}
		if _, skip := exclude[i]; skip {
			continue
		}

		d := bead.Distance(target)
		if best.Index < 0 || policy.Prefers(d, best.Distance) {
			best = domain.Match{Bead: bead, Distance: d, Index: i}
		}
	}
	if best.Index < 0 {
		return domain.Match{}, false
	}
	return best, true
}
