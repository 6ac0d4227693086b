package application

import (
	"fmt"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

// ScoredMatch is a conversion candidate with its likeness percentage.
type ScoredMatch struct {
	domain.Match
	Likeness float64
}

// Conversion is the result of converting a bead to another brand.
type Conversion struct {
	Source      domain.Bead
	TargetBrand string
	Matches     []ScoredMatch
}

// Converter finds equivalents of a bead in another brand.
type Converter struct {
	catalog *Catalog
	logger  *log.Logger
}

// NewConverter creates a Converter over catalog.
func NewConverter(catalog *Catalog, logger *log.Logger) *Converter {
	return &Converter{catalog: catalog, logger: logger}
}

// ValidateTarget checks that target exists and differs from source.
func (cv *Converter) ValidateTarget(source, target string) error {
	source = domain.NormalizeBrand(source)
	target = domain.NormalizeBrand(target)
	if target == source {
		return &domain.SameBrandError{Brand: target}
	}
	if !cv.catalog.HasBrand(target) {
		return &domain.UnknownBrandError{Brand: target}
	}
	return nil
}

// Convert looks up the bead identified by brand and colorID (name or code)
// and returns its closest equivalents in targetBrand.
func (cv *Converter) Convert(brand, colorID, targetBrand string) (Conversion, error) {
	source, err := cv.catalog.FindColor(brand, colorID)
	if err != nil {
		return Conversion{}, err
	}
	return cv.ConvertBead(source, targetBrand)
}

// ConvertBead returns the closest equivalents of source in targetBrand.
func (cv *Converter) ConvertBead(source domain.Bead, targetBrand string) (Conversion, error) {
	targetBrand = domain.NormalizeBrand(targetBrand)
	if err := cv.ValidateTarget(source.Brand, targetBrand); err != nil {
		return Conversion{}, err
	}

	matches := cv.catalog.TopN(source.RGB, targetBrand)
	if len(matches) == 0 {
		cv.logger.Warn(log.CatSearch, "Conversion found no match", "code", source.Code, "from", source.Brand, "to", targetBrand)
		return Conversion{}, fmt.Errorf("could not convert the bead: %s [%s] from brand: %s to the brand: %s: %w",
			source.Name, source.Code, source.Brand, targetBrand, domain.ErrNoMatch)
	}

	conv := Conversion{
		Source:      source,
		TargetBrand: targetBrand,
		Matches:     make([]ScoredMatch, 0, len(matches)),
	}
	for _, m := range matches {
		conv.Matches = append(conv.Matches, ScoredMatch{Match: m, Likeness: m.Likeness()})
	}
	cv.logger.Debug(log.CatSearch, "Converted bead", "code", source.Code, "from", source.Brand, "to", targetBrand, "matches", len(conv.Matches))
	return conv, nil
}
