// Package huffman builds the four standard JPEG Annex K Huffman tables
// (luminance/chrominance, DC/AC) into canonical codes per Annex C, and
// exposes the zig-zag scan order used to linearize an 8x8 coefficient
// block before run-length coding (spec.md §4.5).
package huffman

// ZigZagOrder maps scan position i to the row-major block index of the
// i-th coefficient visited in the standard JPEG zig-zag scan.
var ZigZagOrder = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// ZigZag reorders a row-major coefficient block into zig-zag scan order.
func ZigZag(block [64]int16) [64]int16 {
	var out [64]int16
	for i, src := range ZigZagOrder {
		out[i] = block[src]
	}
	return out
}
