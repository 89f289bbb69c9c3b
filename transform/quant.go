package transform

import (
	"math"

	"github.com/mjkern/bmpjpeg/errs"
)

// Algorithm selects which forward DCT approximation ForwardBlock uses.
type Algorithm int

const (
	RealDCT Algorithm = iota
	BinDCT
)

func (a Algorithm) String() string {
	switch a {
	case RealDCT:
		return "real"
	case BinDCT:
		return "bin"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses the CLI-facing spelling of an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "real":
		return RealDCT, nil
	case "bin":
		return BinDCT, nil
	default:
		return 0, errs.InvalidInputf("unknown dct algorithm %q", s)
	}
}

// QuantTable is a row-major 8x8 quantization step table (Annex K).
type QuantTable [64]int32

// LuminanceQuantTable is the Annex K table for the Y component, unscaled.
var LuminanceQuantTable = QuantTable{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// ChrominanceQuantTable is the Annex K table shared by Cb and Cr, unscaled.
var ChrominanceQuantTable = QuantTable{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// ForwardBlock runs the level-shifted sample block through the selected
// DCT approximation, producing un-quantized coefficients in row-major
// (natural, not zig-zag) order.
func ForwardBlock(shifted Block, alg Algorithm) Block {
	switch alg {
	case BinDCT:
		return forwardBinDCT(shifted)
	default:
		return forwardRealDCT(shifted)
	}
}

// Quantize divides coeffs by table entrywise. The real DCT path rounds
// half-away-from-zero before truncating to int16; the binDCT path uses
// plain truncating integer division, since its lifting network already
// yields an integer-scaled approximation and an additional rounding step
// would double-count it.
func Quantize(coeffs Block, table QuantTable, alg Algorithm) ([64]int16, error) {
	var out [64]int16
	for i := 0; i < 64; i++ {
		step := table[i]
		var q int32
		if alg == RealDCT {
			q = int32(math.Round(float64(coeffs[i]) / float64(step)))
		} else {
			q = coeffs[i] / step
		}
		if q > math.MaxInt16 || q < math.MinInt16 {
			return out, errs.CoefficientOverflowf("coefficient %d out of int16 range at index %d", q, i)
		}
		out[i] = int16(q)
	}
	return out, nil
}

// ProcessBlock runs the full sample-block pipeline: level shift, forward
// DCT, and quantization.
func ProcessBlock(samples []uint8, table QuantTable, alg Algorithm) ([64]int16, error) {
	shifted := levelShiftBlock(samples)
	coeffs := ForwardBlock(shifted, alg)
	return Quantize(coeffs, table, alg)
}
