package imp

import "image"

// Histogram counts the samples of a grayscale image per intensity.
type Histogram [256]int

// NewHistogram builds the intensity histogram of img.
func NewHistogram(img *image.Gray) Histogram {
	var h Histogram
	rect := img.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			h[img.GrayAt(x, y).Y]++
		}
	}
	return h
}

// Total returns the number of samples counted.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Otsu returns the Otsu threshold of the histogram.
func (h *Histogram) Otsu() uint8 {
	return OtsuThreshold(h, h.Total())
}
