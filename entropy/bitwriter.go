// Package entropy implements the run-length/amplitude transform and the
// bit-level Huffman entropy writer that turns a scan's quantized
// coefficient blocks into the compressed JPEG scan data (spec.md §4.5,
// §4.6), including marker byte-stuffing. It encodes one block at a time;
// the MCU-interleaved walk over the three components is done by the caller.
package entropy

import (
	"io"

	"github.com/icza/bitio"

	"github.com/mjkern/bmpjpeg/errs"
)

// stuffingWriter inserts a 0x00 byte after every 0xFF byte written, per
// the JPEG marker discipline that reserves 0xFF as a marker prefix inside
// entropy-coded scan data.
type stuffingWriter struct {
	dst io.Writer
}

func (s *stuffingWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if _, err := s.dst.Write([]byte{b}); err != nil {
			return 0, err
		}
		if b == 0xFF {
			if _, err := s.dst.Write([]byte{0x00}); err != nil {
				return 0, err
			}
		}
	}
	return len(p), nil
}

// BitWriter accumulates variable-length bit codes MSB-first and emits
// stuffed bytes to the underlying writer. The final partial byte, if any,
// is padded with 1 bits, not bitio's default of 0 bits (spec.md §4.6).
type BitWriter struct {
	bw       *bitio.Writer
	bitCount uint64
}

// NewBitWriter wraps dst with byte-stuffing and bit accumulation.
func NewBitWriter(dst io.Writer) *BitWriter {
	return &BitWriter{bw: bitio.NewWriter(&stuffingWriter{dst: dst})}
}

// WriteBits writes the low n bits of value, most-significant bit first.
func (w *BitWriter) WriteBits(value uint64, n uint8) error {
	if n == 0 {
		return nil
	}
	if err := w.bw.WriteBits(value, n); err != nil {
		return errs.IOf("writing %d bits: %v", n, err)
	}
	w.bitCount += uint64(n)
	return nil
}

// Close pads the current byte with 1 bits, if any bits are pending, and
// flushes the underlying writer.
func (w *BitWriter) Close() error {
	if pad := uint8(w.bitCount % 8); pad != 0 {
		padBits := 8 - pad
		ones := uint64(1)<<padBits - 1
		if err := w.WriteBits(ones, padBits); err != nil {
			return err
		}
	}
	if err := w.bw.Close(); err != nil {
		return errs.IOf("closing bit writer: %v", err)
	}
	return nil
}
