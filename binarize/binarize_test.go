package binarize

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArnaudCalmettes/binarize/imp"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func readGray(t *testing.T, path string) *image.Gray {
	t.Helper()

	img, err := imp.ReadFile(path)
	require.NoError(t, err)
	return imp.ToGray(img)
}

func sampleGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(img.Pix, []uint8{100, 150, 127, 128})
	return img
}

// twoClusters returns a 10x10 color image, top half dark and bottom half bright.
func twoClusters(dark, bright uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := dark
			if y >= 5 {
				v = bright
			}
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func TestRunSimple(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "sample.png")
	writePNG(t, input, sampleGray())

	res, err := Run(Options{Input: input, Threshold: 127, Method: MethodSimple}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "sample_binary.png"), res.Output)
	assert.Equal(t, 2, res.Width)
	assert.Equal(t, 2, res.Height)
	assert.Equal(t, "L", res.Mode)
	assert.Equal(t, MethodSimple, res.Method)
	assert.Equal(t, uint8(127), res.Threshold)

	out := readGray(t, res.Output)
	assert.Equal(t, []uint8{0, 255, 0, 255}, out.Pix)
}

func TestRunOtsu(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "clusters.png")
	output := filepath.Join(dir, "out", "result.bmp")
	require.NoError(t, os.Mkdir(filepath.Dir(output), 0o755))
	writePNG(t, input, twoClusters(20, 200))

	res, err := Run(Options{Input: input, Output: output, Threshold: 127, Method: MethodOtsu}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, output, res.Output)
	assert.Equal(t, "RGB", res.Mode)
	assert.Equal(t, uint8(20), res.Threshold)

	out := readGray(t, output)
	for y := 0; y < 10; y++ {
		want := uint8(0)
		if y >= 5 {
			want = 255
		}
		for x := 0; x < 10; x++ {
			assert.Equal(t, want, out.GrayAt(x, y).Y)
		}
	}
}

func TestRunOtsuUniform(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "flat.png")
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 50
	}
	writePNG(t, input, img)

	res, err := Run(Options{Input: input, Method: MethodOtsu, Threshold: DefaultThreshold}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, uint8(0), res.Threshold)

	for _, v := range readGray(t, res.Output).Pix {
		assert.Equal(t, uint8(255), v)
	}
}

func TestRunInvertAndNormalize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "low.png")
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	copy(img.Pix, []uint8{10, 20, 30})
	writePNG(t, input, img)

	// Stretched to 0, 128, 255: only the last sample is above 200.
	res, err := Run(Options{Input: input, Threshold: 200, Normalize: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 255}, readGray(t, res.Output).Pix)

	res, err = Run(Options{Input: input, Threshold: 200, Normalize: true, Invert: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 255, 0}, readGray(t, res.Output).Pix)

	// Without normalization nothing is above 200.
	res, err = Run(Options{Input: input, Threshold: 200}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0}, readGray(t, res.Output).Pix)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.png")
	writePNG(t, valid, sampleGray())
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))

	cases := []struct {
		name string
		opts Options
		err  error
	}{
		{"invalid threshold", Options{Input: valid, Threshold: 256}, ErrInvalidThreshold},
		{"invalid threshold before reading", Options{Input: filepath.Join(dir, "missing.png"), Threshold: -5}, ErrInvalidThreshold},
		{"unknown method", Options{Input: valid, Method: "fancy"}, ErrUnknownMethod},
		{"missing input", Options{Input: filepath.Join(dir, "missing.png")}, ErrInputNotFound},
		{"missing input is not exist", Options{Input: filepath.Join(dir, "missing.png")}, os.ErrNotExist},
		{"not an image", Options{Input: garbage}, ErrDecode},
		{"unsupported output", Options{Input: valid, Output: filepath.Join(dir, "out.webp")}, ErrUnsupportedOutput},
		{"missing input reported before output format", Options{Input: filepath.Join(dir, "missing.xyz")}, ErrInputNotFound},
		{"garbage reported before output format", Options{Input: garbage, Output: filepath.Join(dir, "out.xyz")}, ErrDecode},
		{"output dir missing", Options{Input: valid, Output: filepath.Join(dir, "nope", "out.png")}, ErrEncode},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := Run(c.opts, zerolog.Nop())
			assert.ErrorIs(t, err, c.err)
		})
	}

	// No output was produced by any failing run.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"valid.png", "garbage.png"}, names)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "clusters.png")
	writePNG(t, input, twoClusters(10, 240))

	rep, err := Inspect(input, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 10, rep.Width)
	assert.Equal(t, 10, rep.Height)
	assert.Equal(t, 50, rep.Histogram[10])
	assert.Equal(t, 50, rep.Histogram[240])
	assert.Equal(t, 100, rep.Histogram.Total())
	assert.Equal(t, uint8(10), rep.Otsu)

	_, err = Inspect(filepath.Join(dir, "missing.png"), zerolog.Nop())
	assert.ErrorIs(t, err, ErrInputNotFound)

	_, err = Inspect("", zerolog.Nop())
	assert.ErrorIs(t, err, ErrNoInput)
}
