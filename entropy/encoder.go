package entropy

import (
	"github.com/mjkern/bmpjpeg/errs"
	"github.com/mjkern/bmpjpeg/huffman"
)

// EncodeBlock zig-zags a row-major coefficient block, run-length encodes
// it against prevDC, and writes the Huffman-coded bitstream to bw.
func EncodeBlock(bw *BitWriter, coeffs [64]int16, prevDC *int16, dcTable, acTable *huffman.Table) error {
	zigzag := huffman.ZigZag(coeffs)
	symbols, err := RunLengthEncode(prevDC, zigzag)
	if err != nil {
		return err
	}
	return writeSymbols(bw, symbols, dcTable, acTable)
}

func writeSymbols(bw *BitWriter, symbols []RunLength, dcTable, acTable *huffman.Table) error {
	for i, r := range symbols {
		if i == 0 {
			code, length, ok := dcTable.Code(r.Symbol)
			if !ok {
				return errs.MissingHuffmanCodef("no DC huffman code for symbol %#x", r.Symbol)
			}
			if err := bw.WriteBits(uint64(code), length); err != nil {
				return err
			}
			if err := bw.WriteBits(uint64(uint16(r.Amplitude)), r.Symbol&0x0f); err != nil {
				return err
			}
			continue
		}

		code, length, ok := acTable.Code(r.Symbol)
		if !ok {
			return errs.MissingHuffmanCodef("no AC huffman code for symbol %#x", r.Symbol)
		}
		if err := bw.WriteBits(uint64(code), length); err != nil {
			return err
		}
		if r.Symbol != 0xf0 && r.Symbol != 0x00 {
			if err := bw.WriteBits(uint64(uint16(r.Amplitude)), r.Symbol&0x0f); err != nil {
				return err
			}
		}
	}
	return nil
}
