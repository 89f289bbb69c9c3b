package huffman

import "sync"

// Kind identifies one of the four standard Annex K Huffman tables.
type Kind int

const (
	LumaDC Kind = iota
	ChromaDC
	LumaAC
	ChromaAC
)

// Table is a canonical Huffman table built from a JPEG Annex K
// length/symbol specification: offsets[i] is the index into symbols (and
// codes) of the first code that is i+1 bits long.
type Table struct {
	offsets [17]uint8
	symbols []uint8
	codes   []uint32
}

// Lengths returns the 16 per-length symbol counts, as required by the DHT
// marker's BITS field.
func (t *Table) Lengths() [16]uint8 {
	var counts [16]uint8
	for i := 0; i < 16; i++ {
		counts[i] = t.offsets[i+1] - t.offsets[i]
	}
	return counts
}

// Symbols returns the symbols in length-major order, as required by the
// DHT marker's HUFFVAL field.
func (t *Table) Symbols() []uint8 {
	return t.symbols
}

// Code returns the canonical code and its bit length for symbol, and
// false if symbol does not appear in the table.
func (t *Table) Code(symbol uint8) (code uint32, length uint8, ok bool) {
	for i := 0; i < 16; i++ {
		for j := t.offsets[i]; j < t.offsets[i+1]; j++ {
			if t.symbols[j] == symbol {
				return t.codes[j], uint8(i + 1), true
			}
		}
	}
	return 0, 0, false
}

// generateCodes fills codes with the canonical Huffman codes per JPEG
// Annex C: codes of length i+1 are assigned consecutively starting from
// the current running code, which is then shifted left before moving to
// the next length.
func generateCodes(offsets [17]uint8, symbolCount int) []uint32 {
	codes := make([]uint32, symbolCount)
	var code uint32
	for i := 0; i < 16; i++ {
		for j := offsets[i]; j < offsets[i+1]; j++ {
			codes[j] = code
			code++
		}
		code <<= 1
	}
	return codes
}

var (
	lumaDC, chromaDC, lumaAC, chromaAC *Table
	tablesOnce                        sync.Once
)

func buildTables() {
	lumaDC = &Table{
		offsets: [17]uint8{0, 0, 1, 6, 7, 8, 9, 10, 11, 12, 12, 12, 12, 12, 12, 12, 12},
		symbols: []uint8{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b},
	}
	lumaDC.codes = generateCodes(lumaDC.offsets, len(lumaDC.symbols))

	chromaDC = &Table{
		offsets: [17]uint8{0, 0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 12, 12, 12, 12, 12},
		symbols: []uint8{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b},
	}
	chromaDC.codes = generateCodes(chromaDC.offsets, len(chromaDC.symbols))

	lumaAC = &Table{
		offsets: [17]uint8{0, 0, 2, 3, 6, 9, 11, 15, 18, 23, 28, 32, 36, 36, 36, 37, 162},
		symbols: []uint8{
			0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12, 0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
			0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08, 0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
			0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
			0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
			0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
			0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
			0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
			0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
			0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
			0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	}
	lumaAC.codes = generateCodes(lumaAC.offsets, len(lumaAC.symbols))

	chromaAC = &Table{
		offsets: [17]uint8{0, 0, 2, 3, 5, 9, 13, 16, 20, 27, 32, 36, 40, 40, 41, 43, 162},
		symbols: []uint8{
			0x00, 0x01, 0x02, 0x03, 0x11, 0x04, 0x05, 0x21, 0x31, 0x06, 0x12, 0x41, 0x51, 0x07, 0x61, 0x71,
			0x13, 0x22, 0x32, 0x81, 0x08, 0x14, 0x42, 0x91, 0xa1, 0xb1, 0xc1, 0x09, 0x23, 0x33, 0x52, 0xf0,
			0x15, 0x62, 0x72, 0xd1, 0x0a, 0x16, 0x24, 0x34, 0xe1, 0x25, 0xf1, 0x17, 0x18, 0x19, 0x1a, 0x26,
			0x27, 0x28, 0x29, 0x2a, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
			0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68,
			0x69, 0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7a, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
			0x88, 0x89, 0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5,
			0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3,
			0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda,
			0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	}
	chromaAC.codes = generateCodes(chromaAC.offsets, len(chromaAC.symbols))
}

// Get returns one of the four standard tables, building all four from
// their Annex K specification on first use.
func Get(kind Kind) *Table {
	tablesOnce.Do(buildTables)
	switch kind {
	case LumaDC:
		return lumaDC
	case ChromaDC:
		return chromaDC
	case LumaAC:
		return lumaAC
	default:
		return chromaAC
	}
}
