package entropy

import "github.com/mjkern/bmpjpeg/errs"

// RunLength is one symbol of a run-length/amplitude coded coefficient:
// either the single DC entry, or an AC entry whose Symbol packs a
// preceding zero run (high nibble) and amplitude bit length (low nibble),
// with the two reserved codes ZRL (0xf0, 16 zeros) and EOB (0x00) leaving
// Amplitude unused.
type RunLength struct {
	Symbol    uint8
	Amplitude int16
}

func bitLength(v int16) uint8 {
	var length uint8
	for v > 0 {
		v >>= 1
		length++
	}
	return length
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func runSymbol(zeros, length uint8) uint8 {
	return (zeros<<4)&0xf0 | length&0x0f
}

// amplitude converts a signed coefficient into JPEG's variable-length
// integer amplitude encoding: non-negative values pass through unchanged,
// negative values are biased into the top of their bit-length's range, so
// the result always fits in the low `length` bits.
func amplitude(value int16, length uint8) int16 {
	if value < 0 {
		return value + int16(1<<length) - 1
	}
	return value
}

// RunLengthEncode converts one zig-zag ordered coefficient block (see
// huffman.ZigZag) into its run-length/amplitude symbol stream and
// advances the running DC predictor. Unlike some reference
// implementations, every AC amplitude is encoded with its own bit length,
// not the DC coefficient's.
func RunLengthEncode(prevDC *int16, zigzag [64]int16) ([]RunLength, error) {
	dcDiff := zigzag[0] - *prevDC
	dcBitLength := bitLength(abs16(dcDiff))
	if dcBitLength > 11 {
		return nil, errs.CoefficientOverflowf("DC coefficient bit length %d exceeds 11", dcBitLength)
	}
	out := make([]RunLength, 0, 64)
	out = append(out, RunLength{Symbol: runSymbol(0, dcBitLength), Amplitude: amplitude(dcDiff, dcBitLength)})
	*prevDC = zigzag[0]

	var zeros uint8
	i := 1
	for i < 64 {
		for i < 64 && zigzag[i] == 0 {
			zeros++
			i++
		}
		if i == 64 {
			out = append(out, RunLength{Symbol: 0x00})
			break
		}
		for zeros >= 16 {
			out = append(out, RunLength{Symbol: 0xf0})
			zeros -= 16
		}
		acCoeff := zigzag[i]
		acBitLength := bitLength(abs16(acCoeff))
		if acBitLength > 10 {
			return nil, errs.CoefficientOverflowf("AC coefficient bit length %d exceeds 10", acBitLength)
		}
		out = append(out, RunLength{Symbol: runSymbol(zeros, acBitLength), Amplitude: amplitude(acCoeff, acBitLength)})
		zeros = 0
		i++
	}
	return out, nil
}
