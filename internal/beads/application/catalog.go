package application

import (
	"fmt"
	"sort"

	gocache "github.com/patrickmn/go-cache"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

// DefaultTopN is the number of matches returned by Catalog.TopN when no
// WithTopN option is given.
const DefaultTopN = 3

// BrandSummary describes one brand in the catalog.
type BrandSummary struct {
	Brand string
	Count int
}

// Catalog is the read-only pool of loaded beads.
type Catalog struct {
	beads  []domain.Bead
	counts map[string]int
	policy domain.TieBreak
	topN   int
	memo   *gocache.Cache
	logger *log.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithTieBreak sets the tie-break policy used by Nearest and TopN.
func WithTieBreak(p domain.TieBreak) CatalogOption {
	return func(c *Catalog) { c.policy = p }
}

// WithTopN sets how many matches TopN returns.
func WithTopN(n int) CatalogOption {
	return func(c *Catalog) { c.topN = n }
}

// WithMemo enables or disables memoization of Nearest results.
func WithMemo(enabled bool) CatalogOption {
	return func(c *Catalog) {
		if !enabled {
			c.memo = nil
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) CatalogOption {
	return func(c *Catalog) { c.logger = l }
}

// NewCatalog builds a Catalog from loaded beads.
// Returns domain.ErrEmptyCatalog if beads is empty.
func NewCatalog(beads []domain.Bead, opts ...CatalogOption) (*Catalog, error) {
	if len(beads) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	c := &Catalog{
		beads:  beads,
		counts: make(map[string]int),
		policy: domain.TieBreakLast,
		topN:   DefaultTopN,
		memo:   gocache.New(gocache.NoExpiration, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, b := range beads {
		c.counts[b.Brand]++
	}

	c.logger.Info(log.CatCatalog, "Catalog ready", "beads", len(beads), "brands", len(c.counts), "tie_break", string(c.policy))
	return c, nil
}

// Beads returns the pool. Callers must not modify it.
func (c *Catalog) Beads() []domain.Bead {
	return c.beads
}

// Len returns the number of beads.
func (c *Catalog) Len() int {
	return len(c.beads)
}

// TopNCount returns how many matches TopN returns.
func (c *Catalog) TopNCount() int {
	return c.topN
}

// Policy returns the tie-break policy.
func (c *Catalog) Policy() domain.TieBreak {
	return c.policy
}

// HasBrand reports whether any bead has the brand (case-insensitive).
func (c *Catalog) HasBrand(brand string) bool {
	_, ok := c.counts[domain.NormalizeBrand(brand)]
	return ok
}

// Brands returns every brand with its bead count, sorted by name.
func (c *Catalog) Brands() []BrandSummary {
	out := make([]BrandSummary, 0, len(c.counts))
	for brand, n := range c.counts {
		out = append(out, BrandSummary{Brand: brand, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Brand < out[j].Brand })
	return out
}

// FindColor returns the first bead of brand whose name or code equals id.
func (c *Catalog) FindColor(brand, id string) (domain.Bead, error) {
	brand = domain.NormalizeBrand(brand)
	if !c.HasBrand(brand) {
		return domain.Bead{}, &domain.UnknownBrandError{Brand: brand}
	}
	for _, b := range c.beads {
		if b.Brand == brand && b.MatchesID(id) {
			return b, nil
		}
	}
	return domain.Bead{}, &domain.UnknownColorError{Brand: brand, ID: id}
}

type memoEntry struct {
	match domain.Match
	ok    bool
}

// Nearest returns the closest bead to target within brand.
func (c *Catalog) Nearest(target domain.RGB, brand string) (domain.Match, bool) {
	brand = domain.NormalizeBrand(brand)
	key := fmt.Sprintf("%s|%d,%d,%d", brand, target.R, target.G, target.B)
	if c.memo != nil {
		if v, found := c.memo.Get(key); found {
			e := v.(memoEntry)
			return e.match, e.ok
		}
	}

	m, ok := Nearest(c.beads, target, brand, c.policy)
	c.logger.Debug(log.CatSearch, "Nearest match", "brand", brand, "rgb", target.String(), "found", ok, "code", m.Bead.Code, "distance", m.Distance)

	if c.memo != nil {
		c.memo.SetDefault(key, memoEntry{match: m, ok: ok})
	}
	return m, ok
}

// TopN returns the configured number of closest distinct beads within brand.
func (c *Catalog) TopN(target domain.RGB, brand string) []domain.Match {
	matches := TopN(c.beads, target, brand, c.topN, c.policy)
	c.logger.Debug(log.CatSearch, "Top matches", "brand", brand, "rgb", target.String(), "found", len(matches))
	return matches
}
