// Package luma provides the RGB sample type used to shade grid cells and
// its conversion to a single perceptual-brightness value.
package luma

import (
	"errors"
	"fmt"
	"math"
)

// BT.601 luma coefficients. These are a fixed contract: heatmap shading
// and recorded reference outputs depend on the exact weights.
const (
	coeffRed   = 0.299
	coeffGreen = 0.587
	coeffBlue  = 0.114
)

// ErrChannelOutOfRange is returned when a channel value falls outside
// [0, 255].
var ErrChannelOutOfRange = errors.New("channel out of range")

// Sample is an immutable RGB triplet. Channel order is fixed (red, green,
// blue) and each channel is an 8-bit value, so a Sample can never hold an
// out-of-range channel.
type Sample struct {
	R uint8
	G uint8
	B uint8
}

// New validates each channel against [0, 255] and returns the sample.
// Taking int channels (rather than uint8) lets callers pass computed
// values and get an explicit error instead of a silent wrap.
func New(r, g, b int) (Sample, error) {
	for _, ch := range []struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.v < 0 || ch.v > 255 {
			return Sample{}, fmt.Errorf("%w: %s=%d", ErrChannelOutOfRange, ch.name, ch.v)
		}
	}
	return Sample{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Luminance returns the BT.601 luma of the sample, computed in float64:
// 0.299*R + 0.587*G + 0.114*B. The result is in [0, 255].
func (s Sample) Luminance() float64 {
	return coeffRed*float64(s.R) + coeffGreen*float64(s.G) + coeffBlue*float64(s.B)
}

// Grayscale returns the sample with all three channels set to the rounded
// luminance, preserving perceived brightness.
func (s Sample) Grayscale() Sample {
	v := uint8(math.Round(s.Luminance()))
	return Sample{R: v, G: v, B: v}
}

// Hex returns the sample as a lowercase "#rrggbb" string.
func (s Sample) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}

// RGBA implements image/color.Color (fully opaque), so a Sample can be
// handed straight to plotting code that expects stdlib colours.
func (s Sample) RGBA() (r, g, b, a uint32) {
	r = uint32(s.R)
	r |= r << 8
	g = uint32(s.G)
	g |= g << 8
	b = uint32(s.B)
	b |= b << 8
	return r, g, b, 0xffff
}
