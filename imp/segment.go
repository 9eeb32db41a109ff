package imp

import (
	"image"
	"image/color"
)

var (
	Black = color.Gray{0}
	White = color.Gray{255}
)

// Threshold performs simple binarization of a grayscale image: samples
// strictly above level become white, the others black. src and dst may be
// the same image.
func Threshold(src, dst *image.Gray, level uint8) error {
	if src.Bounds() != dst.Bounds() {
		return errBounds
	}

	for y := src.Bounds().Min.Y; y < src.Bounds().Max.Y; y++ {
		for x := src.Bounds().Min.X; x < src.Bounds().Max.X; x++ {
			if src.GrayAt(x, y).Y > level {
				dst.SetGray(x, y, White)
			} else {
				dst.SetGray(x, y, Black)
			}
		}
	}
	return nil
}

// ThresholdInv performs inverted binarization of a grayscale image.
func ThresholdInv(src, dst *image.Gray, level uint8) error {
	if src.Bounds() != dst.Bounds() {
		return errBounds
	}

	for y := src.Bounds().Min.Y; y < src.Bounds().Max.Y; y++ {
		for x := src.Bounds().Min.X; x < src.Bounds().Max.X; x++ {
			if src.GrayAt(x, y).Y > level {
				dst.SetGray(x, y, Black)
			} else {
				dst.SetGray(x, y, White)
			}
		}
	}
	return nil
}

// Binarize returns a new binary image of src split at level.
func Binarize(src *image.Gray, level uint8) *image.Gray {
	dst := image.NewGray(src.Bounds())
	if err := Threshold(src, dst, level); err != nil {
		// dst is allocated with the bounds of src.
		panic(err)
	}
	return dst
}
