package imp

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// Register WebP on top of the formats imaging already decodes.
	_ "golang.org/x/image/webp"
)

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	return imaging.Open(filename)
}

// Read reads an image from a io.Reader.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// FormatFor returns the encoding format matching the extension of filename.
func FormatFor(filename string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return f, fmt.Errorf("unknown extension %q: %w", filepath.Ext(filename), err)
	}
	return f, nil
}

// Save writes an image to filename. The format is decided based upon its
// extension. The image is encoded to a temporary file next to the destination
// and renamed into place, so a failed encode leaves no output behind.
func Save(filename string, img image.Image) error {
	format, err := FormatFor(filename)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := imaging.Encode(tmp, img, format, imaging.JPEGQuality(100)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}

// ColorMode names the color model of an image, using the usual short mode
// names ("L", "RGB", "RGBA", ...).
func ColorMode(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "L"
	case *image.Gray16:
		return "I;16"
	case *image.Paletted:
		return "P"
	case *image.CMYK:
		return "CMYK"
	case *image.YCbCr:
		return "YCbCr"
	case *image.NYCbCrA:
		return "YCbCrA"
	case *image.Alpha, *image.Alpha16:
		return "A"
	case *image.RGBA, *image.RGBA64, *image.NRGBA, *image.NRGBA64:
		if opaque(img) {
			return "RGB"
		}
		return "RGBA"
	}

	switch img.ColorModel() {
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	}
	return fmt.Sprintf("%T", img)
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
