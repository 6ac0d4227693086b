// Package domain implements the domain layer for bead color matching.
//
// This package contains only pure Go code with standard library imports:
//   - Defines the Bead value and the RGB color triple
//   - Implements the Euclidean color distance and the likeness score
//   - Defines brand filtering, the tie-break policy for nearest-match search,
//     and the image histogram value types
//   - Has no knowledge of infrastructure concerns (CSV files, image decoding, terminals)
//
// # Core Types
//
// Bead represents a catalog entry: a physical colored bead identified by
// brand, code, and name, with its xml token, hex string and RGB color.
//
// Match pairs a Bead with its distance to a target color and its position in
// the catalog pool. The position is the bead's identity during top-N search.
//
// Histogram describes the distinct colors of an image and their pixel counts.
//
// # Import Aliasing
//
// There is also an application package for search and orchestration.
// When importing both packages, use aliasing to disambiguate:
//
//	import (
//	    domain "github.com/zjrosen/beadmatch/internal/beads/domain"
//	    appbeads "github.com/zjrosen/beadmatch/internal/beads/application"
//	)
package domain
