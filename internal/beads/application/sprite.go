package application

import (
	"sort"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

// DefaultAlphaThreshold counts only fully opaque pixels.
const DefaultAlphaThreshold = 255

// Usage is how many beads of one color a sprite needs.
type Usage struct {
	Bead  domain.Bead
	Count int
	index int
}

// SpriteCost is the bead bill of materials for an image.
type SpriteCost struct {
	Brand      string
	Width      int
	Height     int
	TotalBeads int
	Usage      []Usage
	// Unmatched lists opaque colors for which no bead of the brand exists.
	Unmatched []domain.ColorCount
	// Skipped counts pixels excluded for transparency.
	Skipped int
}

// SpriteCoster maps image colors to beads.
type SpriteCoster struct {
	catalog        *Catalog
	alphaThreshold uint8
	logger         *log.Logger
}

// NewSpriteCoster creates a SpriteCoster. Pixels with alpha below
// alphaThreshold are not counted.
func NewSpriteCoster(catalog *Catalog, alphaThreshold uint8, logger *log.Logger) *SpriteCoster {
	return &SpriteCoster{catalog: catalog, alphaThreshold: alphaThreshold, logger: logger}
}

// Estimate maps each opaque histogram color to its nearest bead in brand and
// sums pixel counts per bead.
func (sc *SpriteCoster) Estimate(hist domain.Histogram, brand string) (SpriteCost, error) {
	brand = domain.NormalizeBrand(brand)
	if !sc.catalog.HasBrand(brand) {
		return SpriteCost{}, &domain.UnknownBrandError{Brand: brand}
	}

	cost := SpriteCost{Brand: brand, Width: hist.Width, Height: hist.Height}
	byIndex := make(map[int]*Usage)

	for _, cc := range hist.Colors {
		if cc.Color.A < sc.alphaThreshold {
			cost.Skipped += cc.Count
			continue
		}

		m, ok := sc.catalog.Nearest(cc.Color.RGB(), brand)
		if !ok {
			sc.logger.Warn(log.CatSearch, "No matching bead for color", "rgb", cc.Color.RGB().String(), "brand", brand)
			cost.Unmatched = append(cost.Unmatched, cc)
			continue
		}

		u, seen := byIndex[m.Index]
		if !seen {
			u = &Usage{Bead: m.Bead, index: m.Index}
			byIndex[m.Index] = u
		}
		u.Count += cc.Count
		cost.TotalBeads += cc.Count
	}

	cost.Usage = make([]Usage, 0, len(byIndex))
	for _, u := range byIndex {
		cost.Usage = append(cost.Usage, *u)
	}
	sort.Slice(cost.Usage, func(i, j int) bool {
		a, b := cost.Usage[i], cost.Usage[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.index < b.index
	})

	sc.logger.Debug(log.CatSearch, "Estimated sprite cost", "brand", brand, "total", cost.TotalBeads, "colors", len(cost.Usage), "unmatched", len(cost.Unmatched))
	return cost, nil
}
