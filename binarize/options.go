package binarize

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Method selects how the threshold is chosen.
type Method string

const (
	// MethodSimple uses the threshold given in the options.
	MethodSimple Method = "simple"
	// MethodOtsu computes the threshold with Otsu's method.
	MethodOtsu Method = "otsu"
)

// DefaultThreshold is the level used when none is given.
const DefaultThreshold = 127

var (
	ErrNoInput           = errors.New("no input image")
	ErrInvalidThreshold  = errors.New("threshold must be between 0 and 255")
	ErrUnknownMethod     = errors.New("unknown binarization method")
	ErrInputNotFound     = errors.New("input image not found")
	ErrDecode            = errors.New("could not decode image")
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrEncode            = errors.New("could not write image")
)

// ParseMethod converts a method name ("simple" or "otsu").
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodSimple, MethodOtsu:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (expected %q or %q)", ErrUnknownMethod, s, MethodSimple, MethodOtsu)
}

// Options describes a single binarization.
type Options struct {
	Input  string
	Output string // defaults to OutputPath(Input)

	Threshold int
	Method    Method

	Invert    bool // write black where the source is bright
	Normalize bool // stretch contrast before thresholding
}

// Validate checks the options before any image is read.
func (o Options) Validate() error {
	if o.Input == "" {
		return ErrNoInput
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		return fmt.Errorf("%w, got %d", ErrInvalidThreshold, o.Threshold)
	}
	_, err := o.method()
	return err
}

// method returns the selected method, simple when none is set.
func (o Options) method() (Method, error) {
	if o.Method == "" {
		return MethodSimple, nil
	}
	return ParseMethod(string(o.Method))
}

// OutputPath derives the default output of input: "<stem>_binary<ext>" in the
// same directory.
func OutputPath(input string) string {
	dir, base := filepath.Split(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+"_binary"+ext)
}
