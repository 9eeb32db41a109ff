package imp

// OtsuThreshold returns the level t maximizing the between-class variance
// of the two classes {v <= t} and {v > t}, where total is the number of
// samples counted in h.
//
// On ties the lowest level wins. When no split ever separates two non-empty
// classes (e.g. a flat image) the result is 0.
// See https://en.wikipedia.org/wiki/Otsu%27s_method
func OtsuThreshold(h *Histogram, total int) uint8 {
	var sumTotal float64
	for v, n := range h {
		sumTotal += float64(v) * float64(n)
	}

	var (
		best    uint8
		bestVar float64

		// Number and weighted sum of the samples <= t.
		wB   float64
		sumB float64
	)
	for t, n := range h {
		wB += float64(n)
		if wB == 0 {
			continue
		}

		wF := float64(total) - wB
		if wF == 0 {
			break
		}

		sumB += float64(t) * float64(n)

		mB := sumB / wB
		mF := (sumTotal - sumB) / wF

		// Square the distance first: the product order decides near-ties.
		d := mB - mF
		variance := wB * wF * (d * d)
		if variance > bestVar {
			bestVar = variance
			best = uint8(t)
		}
	}

	return best
}
