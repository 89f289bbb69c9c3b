package jfif

import (
	"encoding/binary"
	"io"

	"github.com/mjkern/bmpjpeg/errs"
	"github.com/mjkern/bmpjpeg/huffman"
	"github.com/mjkern/bmpjpeg/sampling"
	"github.com/mjkern/bmpjpeg/transform"
)

func writeBytes(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return errs.IOf("writing marker bytes: %v", err)
	}
	return nil
}

func writeU16(w io.Writer, v uint16) error {
	if err := binary.Write(w, binary.BigEndian, v); err != nil {
		return errs.IOf("writing big-endian uint16: %v", err)
	}
	return nil
}

func writeU8(w io.Writer, v uint8) error {
	if _, err := w.Write([]byte{v}); err != nil {
		return errs.IOf("writing byte: %v", err)
	}
	return nil
}

// WriteSOI writes the Start Of Image marker.
func WriteSOI(w io.Writer) error {
	return writeBytes(w, markerSOI[:])
}

// WriteEOI writes the End Of Image marker.
func WriteEOI(w io.Writer) error {
	return writeBytes(w, markerEOI[:])
}

// WriteAPP0 writes the standard JFIF application segment: version 1.1,
// density units of dots per inch, 72x72 density, no thumbnail.
func WriteAPP0(w io.Writer) error {
	if err := writeBytes(w, markerAPP0[:]); err != nil {
		return err
	}
	if err := writeU16(w, 16); err != nil {
		return err
	}
	if err := writeBytes(w, []byte("JFIF\x00")); err != nil {
		return err
	}
	if err := writeBytes(w, []byte{1, 1}); err != nil {
		return err
	}
	if err := writeU8(w, 1); err != nil {
		return err
	}
	if err := writeU16(w, 72); err != nil {
		return err
	}
	if err := writeU16(w, 72); err != nil {
		return err
	}
	return writeBytes(w, []byte{0, 0})
}

// WriteDQT writes one quantization table, serialized in zig-zag order per
// the marker convention, at 8-bit precision.
func WriteDQT(w io.Writer, dest QuantDestination, table transform.QuantTable) error {
	if err := writeBytes(w, markerDQT[:]); err != nil {
		return err
	}
	if err := writeU16(w, 67); err != nil {
		return err
	}
	if err := writeU8(w, uint8(dest)); err != nil {
		return err
	}
	for _, src := range huffman.ZigZagOrder {
		if err := writeU8(w, uint8(table[src])); err != nil {
			return err
		}
	}
	return nil
}

// WriteSOF0 writes the baseline Start Of Frame marker for a 3-component
// (Y, Cb, Cr) image, with Y sampled at factor and Cb/Cr at 1x1.
func WriteSOF0(w io.Writer, width, height int, factor sampling.Factor) error {
	if err := writeBytes(w, markerSOF0[:]); err != nil {
		return err
	}
	if err := writeU16(w, 17); err != nil {
		return err
	}
	if err := writeU8(w, 8); err != nil {
		return err
	}
	if err := writeU16(w, uint16(height)); err != nil {
		return err
	}
	if err := writeU16(w, uint16(width)); err != nil {
		return err
	}
	if err := writeU8(w, 3); err != nil {
		return err
	}
	for id := uint8(1); id < 4; id++ {
		if err := writeU8(w, id); err != nil {
			return err
		}
		var samplingFactor uint8
		var quantTable uint8
		if id == 1 {
			samplingFactor = (uint8(factor.H) << 4) | uint8(factor.V)
			quantTable = 0
		} else {
			samplingFactor = 0x11
			quantTable = 1
		}
		if err := writeU8(w, samplingFactor); err != nil {
			return err
		}
		if err := writeU8(w, quantTable); err != nil {
			return err
		}
	}
	return nil
}

// WriteDHT writes one Huffman table definition.
func WriteDHT(w io.Writer, class HuffmanClass, id uint8, table *huffman.Table) error {
	if err := writeBytes(w, markerDHT[:]); err != nil {
		return err
	}
	symbols := table.Symbols()
	if err := writeU16(w, uint16(19+len(symbols))); err != nil {
		return err
	}
	if err := writeU8(w, (uint8(class)<<4)|id); err != nil {
		return err
	}
	for _, count := range table.Lengths() {
		if err := writeU8(w, count); err != nil {
			return err
		}
	}
	for _, sym := range symbols {
		if err := writeU8(w, sym); err != nil {
			return err
		}
	}
	return nil
}

// WriteSOS writes the Start Of Scan header for a single, fully
// interleaved baseline scan over all three components.
func WriteSOS(w io.Writer) error {
	if err := writeBytes(w, markerSOS[:]); err != nil {
		return err
	}
	if err := writeU16(w, 12); err != nil {
		return err
	}
	if err := writeU8(w, 3); err != nil {
		return err
	}
	for id := uint8(1); id < 4; id++ {
		if err := writeU8(w, id); err != nil {
			return err
		}
		var tableSelectors uint8
		if id != 1 {
			tableSelectors = 0x11
		}
		if err := writeU8(w, tableSelectors); err != nil {
			return err
		}
	}
	if err := writeU8(w, 0); err != nil { // spectral selection start
		return err
	}
	if err := writeU8(w, 63); err != nil { // spectral selection end
		return err
	}
	return writeU8(w, 0) // successive approximation
}

// WriteHeaders writes every marker preceding the entropy-coded scan data:
// SOI, APP0, DQT (luminance then chrominance), SOF0, DHT (YDC, ChDC, YAC,
// ChAC), and SOS.
func WriteHeaders(w io.Writer, width, height int, factor sampling.Factor) error {
	if err := WriteSOI(w); err != nil {
		return err
	}
	if err := WriteAPP0(w); err != nil {
		return err
	}
	if err := WriteDQT(w, DestLuminance, transform.LuminanceQuantTable); err != nil {
		return err
	}
	if err := WriteDQT(w, DestChrominance, transform.ChrominanceQuantTable); err != nil {
		return err
	}
	if err := WriteSOF0(w, width, height, factor); err != nil {
		return err
	}
	if err := WriteDHT(w, ClassDC, 0, huffman.Get(huffman.LumaDC)); err != nil {
		return err
	}
	if err := WriteDHT(w, ClassDC, 1, huffman.Get(huffman.ChromaDC)); err != nil {
		return err
	}
	if err := WriteDHT(w, ClassAC, 0, huffman.Get(huffman.LumaAC)); err != nil {
		return err
	}
	if err := WriteDHT(w, ClassAC, 1, huffman.Get(huffman.ChromaAC)); err != nil {
		return err
	}
	return WriteSOS(w)
}
