// Package colorspace implements the RGB<->YCbCr conversion used by the
// color-converter stage of the encoder (spec.md §4.1).
package colorspace

import "math"

// RGB is an 8-bit-per-channel truecolor pixel.
type RGB struct {
	R, G, B uint8
}

// YCbCr is an 8-bit-per-channel luma/chroma pixel.
type YCbCr struct {
	Y, Cb, Cr uint8
}

// RGBToYCbCr converts a full-range BT.601 RGB triple to YCbCr. Computation
// is in floating point, truncated to uint8; values naturally fall in
// [0,255] under these coefficients, so no explicit clamping is applied.
func RGBToYCbCr(p RGB) YCbCr {
	r := float64(p.R)
	g := float64(p.G)
	b := float64(p.B)

	y := 0.299*r + 0.587*g + 0.114*b
	cb := 128 - 0.168736*r - 0.331264*g + 0.5*b
	cr := 128 + 0.5*r - 0.418688*g - 0.081312*b

	return YCbCr{Y: uint8(y), Cb: uint8(cb), Cr: uint8(cr)}
}

// YCbCrToRGB is the inverse conversion, kept for symmetry; it has no caller
// in the encode pipeline. Each channel is rounded and clamped to [0,255].
func YCbCrToRGB(p YCbCr) RGB {
	y := float64(p.Y)
	cb := float64(p.Cb)
	cr := float64(p.Cr)

	r := y + 1.402*(cr-128)
	g := y - 0.344136*(cb-128) - 0.714136*(cr-128)
	b := y + 1.772*(cb-128)

	toU8 := func(v float64) uint8 {
		return uint8(math.Max(0, math.Min(255, math.Round(v))))
	}
	return RGB{R: toU8(r), G: toU8(g), B: toU8(b)}
}
