// Package jfif serializes a quantized, entropy-coded baseline image into
// the marker structure of a JFIF-compatible JPEG file (spec.md §4.7): SOI,
// APP0, DQT, SOF0, DHT, SOS, and (after the caller writes the
// entropy-coded scan) EOI.
package jfif

// Marker byte pairs (0xFF prefix plus marker code), per ITU T.81 Annex B.
var (
	markerSOI  = [2]byte{0xff, 0xd8}
	markerEOI  = [2]byte{0xff, 0xd9}
	markerAPP0 = [2]byte{0xff, 0xe0}
	markerDQT  = [2]byte{0xff, 0xdb}
	markerSOF0 = [2]byte{0xff, 0xc0}
	markerDHT  = [2]byte{0xff, 0xc4}
	markerSOS  = [2]byte{0xff, 0xda}
)

// QuantDestination identifies the DQT/SOF0 quantization table slot.
type QuantDestination uint8

const (
	DestLuminance   QuantDestination = 0
	DestChrominance QuantDestination = 1
)

// HuffmanClass distinguishes DC from AC Huffman tables in a DHT segment.
type HuffmanClass uint8

const (
	ClassDC HuffmanClass = 0
	ClassAC HuffmanClass = 1
)
