// Package binarize turns images into black and white pictures, using either a
// fixed threshold or one computed with Otsu's method.
package binarize

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/rs/zerolog"

	"github.com/ArnaudCalmettes/binarize/imp"
)

// Result describes a completed binarization.
type Result struct {
	Input     string
	Output    string
	Width     int
	Height    int
	Mode      string
	Method    Method
	Threshold uint8
}

// Run reads opts.Input, binarizes it and writes the result. Nothing is
// written unless every step succeeds.
func Run(opts Options, log zerolog.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	method, _ := opts.method()

	img, mode, err := load(opts.Input, log)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = OutputPath(opts.Input)
	}
	if _, err := imp.FormatFor(output); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedOutput, err)
	}

	gray := imp.ToGray(img)
	if mode != "L" {
		log.Debug().Str("from", mode).Msg("converted to grayscale")
	}
	if opts.Normalize {
		norm := image.NewGray(gray.Bounds())
		if err := imp.Normalize(gray, norm); err != nil {
			return nil, err
		}
		gray = norm
		log.Debug().Msg("normalized contrast")
	}

	var level uint8
	switch method {
	case MethodOtsu:
		h := imp.NewHistogram(gray)
		level = h.Otsu()
		log.Info().Uint8("threshold", level).Msg("computed Otsu threshold")
	default:
		level = uint8(opts.Threshold)
		log.Info().Uint8("threshold", level).Msg("using simple threshold")
	}

	bin := image.NewGray(gray.Bounds())
	if opts.Invert {
		err = imp.ThresholdInv(gray, bin, level)
	} else {
		err = imp.Threshold(gray, bin, level)
	}
	if err != nil {
		return nil, err
	}

	if err := imp.Save(output, bin); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrEncode, output, err)
	}
	log.Info().Str("output", output).Msg("binarization complete")

	b := gray.Bounds()
	return &Result{
		Input:     opts.Input,
		Output:    output,
		Width:     b.Dx(),
		Height:    b.Dy(),
		Mode:      mode,
		Method:    method,
		Threshold: level,
	}, nil
}

// Report summarizes an image without binarizing it.
type Report struct {
	Input     string
	Width     int
	Height    int
	Mode      string
	Histogram imp.Histogram
	Otsu      uint8
}

// Inspect reads an image and computes its histogram and Otsu threshold.
func Inspect(input string, log zerolog.Logger) (*Report, error) {
	if input == "" {
		return nil, ErrNoInput
	}
	img, mode, err := load(input, log)
	if err != nil {
		return nil, err
	}
	gray := imp.ToGray(img)
	h := imp.NewHistogram(gray)
	b := gray.Bounds()
	return &Report{
		Input:     input,
		Width:     b.Dx(),
		Height:    b.Dy(),
		Mode:      mode,
		Histogram: h,
		Otsu:      h.Otsu(),
	}, nil
}

func load(input string, log zerolog.Logger) (image.Image, string, error) {
	img, err := imp.ReadFile(input)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w %s: %w", ErrDecode, input, err)
	}

	mode := imp.ColorMode(img)
	b := img.Bounds()
	log.Info().
		Str("input", input).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Str("mode", mode).
		Msg("read image")
	return img, mode, nil
}
