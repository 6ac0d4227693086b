package domain

import (
	"fmt"
	"math"
	"strings"
)

// MaxDistance is the largest Euclidean distance between two valid colors,
// the black-white diagonal of the RGB cube: sqrt(3 * 255^2).
var MaxDistance = math.Sqrt(3 * 255 * 255)

// AllBrands is the brand filter value that matches every bead.
const AllBrands = "all"

// RGB is a color triple. Channels are conventionally 0-255 but are not validated.
type RGB struct {
	R, G, B int
}

// Distance returns the Euclidean distance between c and other.
func (c RGB) Distance(other RGB) float64 {
	dr := float64(other.R - c.R)
	dg := float64(other.G - c.G)
	db := float64(other.B - c.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Hex renders the color as "#rrggbb", clamping channels to 0-255.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

// String returns "r, g, b".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

func clamp(v int) int {
	return min(max(v, 0), 255)
}

// Bead is a catalog entry. All string fields are stored lowercase.
type Bead struct {
	Brand string
	Code  string
	Name  string
	XML   string
	Hex   string
	RGB   RGB
}

// Distance returns the color distance between the bead and rgb.
func (b Bead) Distance(rgb RGB) float64 {
	return b.RGB.Distance(rgb)
}

// MatchesBrand reports whether the bead passes the brand filter.
// The filter is compared case-insensitively; AllBrands and "" match every bead.
func (b Bead) MatchesBrand(filter string) bool {
	filter = NormalizeBrand(filter)
	return filter == "" || filter == AllBrands || b.Brand == filter
}

// MatchesID reports whether id equals the bead's name or code, case-insensitively.
func (b Bead) MatchesID(id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	return id != "" && (b.Name == id || b.Code == id)
}

// NormalizeBrand trims and lowercases a brand name.
func NormalizeBrand(brand string) string {
	return strings.ToLower(strings.TrimSpace(brand))
}

// Likeness converts a distance into a closeness percentage, 100 for an exact
// match and 0 at MaxDistance. Values below zero only occur for channels
// outside 0-255.
func Likeness(distance float64) float64 {
	return (MaxDistance - distance) / MaxDistance * 100
}

// Match is the result of a nearest-color search.
type Match struct {
	Bead     Bead
	Distance float64
	// Index is the bead's position in the searched pool.
	Index int
}

// Likeness returns the match's closeness percentage.
func (m Match) Likeness() float64 {
	return Likeness(m.Distance)
}
