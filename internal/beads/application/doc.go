// Package application implements bead search and the operations built on it.
//
// This package bridges the domain layer to infrastructure concerns:
//   - Provides port interfaces for catalog loading and image histograms
//   - Implements nearest-match and top-N search over a bead pool
//   - Offers Catalog, Converter, SpriteCoster and the Service facade
//
// # Architecture
//
// The application layer depends on:
//   - Domain layer (internal/beads/domain): pure types and color math
//   - Ports implemented by internal/beads/infrastructure (CSV, image decoding)
//
// # Search
//
// Nearest and TopN are pure functions over a []domain.Bead. Catalog wraps a
// loaded pool, remembers the tie-break policy, and memoizes Nearest results
// because the pool never changes after load.
//
// # Ports (Interfaces)
//
//   - CatalogReader: loads the bead pool
//   - HistogramReader: extracts an image's distinct colors and counts
package application
