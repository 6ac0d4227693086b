package infrastructure

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sort"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	appbeads "github.com/zjrosen/beadmatch/internal/beads/application"
	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

var _ appbeads.HistogramReader = (*ImageHistogramReader)(nil)

// DefaultMaxColors is the default cap on distinct colors in a sprite.
const DefaultMaxColors = 500

// ImageHistogramReader decodes raster images into color histograms.
type ImageHistogramReader struct {
	maxColors int
	logger    *log.Logger
}

// NewImageHistogramReader creates a reader that rejects images with more than
// maxColors distinct colors. maxColors <= 0 selects DefaultMaxColors.
func NewImageHistogramReader(maxColors int, logger *log.Logger) *ImageHistogramReader {
	if maxColors <= 0 {
		maxColors = DefaultMaxColors
	}
	return &ImageHistogramReader{maxColors: maxColors, logger: logger}
}

// ReadHistogram opens and decodes the image at path.
func (r *ImageHistogramReader) ReadHistogram(path string) (hist domain.Histogram, retErr error) {
	f, err := os.Open(path) //nolint:gosec // G304: image path is user input
	if err != nil {
		return domain.Histogram{}, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = closeErr
		}
	}()
	return r.Decode(f)
}

// Decode reads an image from src and builds its histogram.
func (r *ImageHistogramReader) Decode(src io.Reader) (domain.Histogram, error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return domain.Histogram{}, fmt.Errorf("decoding image: %w", err)
	}
	r.logger.Debug(log.CatImage, "Decoded image", "format", format, "bounds", img.Bounds().String())
	return Histogram(img, r.maxColors)
}

// Histogram counts the distinct non-premultiplied colors of img.
// Returns TooManyColorsError if there are more than maxColors.
func Histogram(img image.Image, maxColors int) (domain.Histogram, error) {
	bounds := img.Bounds()
	counts := make(map[domain.RGBA]int)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			key := domain.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
			if _, seen := counts[key]; !seen && len(counts) >= maxColors {
				return domain.Histogram{}, &domain.TooManyColorsError{Limit: maxColors}
			}
			counts[key]++
		}
	}

	hist := domain.Histogram{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Colors: make([]domain.ColorCount, 0, len(counts)),
	}
	for c, n := range counts {
		hist.Colors = append(hist.Colors, domain.ColorCount{Color: c, Count: n})
	}
	sort.Slice(hist.Colors, func(i, j int) bool {
		a, b := hist.Colors[i], hist.Colors[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return packRGBA(a.Color) < packRGBA(b.Color)
	})
	return hist, nil
}

func packRGBA(c domain.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
