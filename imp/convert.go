package imp

import (
	"image"
	"image/color"
)

// ToGray converts any image in a grayscale picture of the same size.
// Luminance is computed with the ITU-R 601-2 weights on the 8-bit straight
// (non-premultiplied) color, so transparency does not darken pixels.
func ToGray(src image.Image) *image.Gray {
	if dst, ok := src.(*image.Gray); ok {
		return dst
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, luma(src.At(x, y)))
		}
	}
	return dst
}

func luma(c color.Color) color.Gray {
	var r, g, b uint32
	switch c := c.(type) {
	case color.Gray:
		return c
	case color.NRGBA:
		r, g, b = uint32(c.R), uint32(c.G), uint32(c.B)
	default:
		n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		r, g, b = uint32(n.R>>8), uint32(n.G>>8), uint32(n.B>>8)
	}
	// L = R*299/1000 + G*587/1000 + B*114/1000, in 16.16 fixed point.
	return color.Gray{uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 16)}
}
