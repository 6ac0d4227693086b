package domain

// RGBA is a non-premultiplied 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}
}

// ColorCount is one histogram bucket.
type ColorCount struct {
	Color RGBA
	Count int
}

// Histogram holds the distinct colors of an image and how many pixels use each.
type Histogram struct {
	Width  int
	Height int
	Colors []ColorCount
}

// Pixels returns the total pixel count across all buckets.
func (h Histogram) Pixels() int {
	total := 0
	for _, c := range h.Colors {
		total += c.Count
	}
	return total
}
