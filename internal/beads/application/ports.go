package application

import domain "github.com/zjrosen/beadmatch/internal/beads/domain"

// CatalogReader loads the bead pool.
type CatalogReader interface {
	ReadCatalog() ([]domain.Bead, error)
}

// HistogramReader extracts the color histogram of an image file.
type HistogramReader interface {
	ReadHistogram(path string) (domain.Histogram, error)
}
