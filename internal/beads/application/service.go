package application

import (
	"fmt"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

// Service is the facade used by the CLI and the interactive menu.
type Service struct {
	catalog    *Catalog
	histograms HistogramReader
	converter  *Converter
	coster     *SpriteCoster
	logger     *log.Logger
}

// ServiceConfig holds Service dependencies.
type ServiceConfig struct {
	Catalog        *Catalog
	Histograms     HistogramReader
	AlphaThreshold uint8
	Logger         *log.Logger
}

// NewService wires a Service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		catalog:    cfg.Catalog,
		histograms: cfg.Histograms,
		converter:  NewConverter(cfg.Catalog, cfg.Logger),
		coster:     NewSpriteCoster(cfg.Catalog, cfg.AlphaThreshold, cfg.Logger),
		logger:     cfg.Logger,
	}
}

// LoadService reads the catalog through reader and wires a Service around it.
// Returns domain.ErrEmptyCatalog if the reader yields no beads.
func LoadService(reader CatalogReader, histograms HistogramReader, alphaThreshold uint8, logger *log.Logger, opts ...CatalogOption) (*Service, error) {
	beads, err := reader.ReadCatalog()
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	catalog, err := NewCatalog(beads, append([]CatalogOption{WithLogger(logger)}, opts...)...)
	if err != nil {
		logger.Error(log.CatCatalog, "Failed to read in beads")
		return nil, err
	}
	return NewService(ServiceConfig{
		Catalog:        catalog,
		Histograms:     histograms,
		AlphaThreshold: alphaThreshold,
		Logger:         logger,
	}), nil
}

// Catalog returns the underlying catalog.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Converter returns the brand converter.
func (s *Service) Converter() *Converter {
	return s.converter
}

// ConvertColor converts the bead identified by brand and colorID to targetBrand.
func (s *Service) ConvertColor(brand, colorID, targetBrand string) (Conversion, error) {
	return s.converter.Convert(brand, colorID, targetBrand)
}

// EstimateSpriteCost reads the image at path and estimates its bead usage in brand.
func (s *Service) EstimateSpriteCost(path, brand string) (SpriteCost, error) {
	if !s.catalog.HasBrand(brand) {
		return SpriteCost{}, &domain.UnknownBrandError{Brand: domain.NormalizeBrand(brand)}
	}
	hist, err := s.histograms.ReadHistogram(path)
	if err != nil {
		s.logger.ErrorErr(log.CatImage, "Failed to read image", err, "path", path)
		return SpriteCost{}, fmt.Errorf("reading image %s: %w", path, err)
	}
	return s.coster.Estimate(hist, brand)
}
