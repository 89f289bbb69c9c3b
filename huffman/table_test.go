package huffman

import "testing"

// TestCanonicalCodesAreProperlyNested checks the defining property of a
// canonical Huffman code (spec.md §8.4): no code is a bit-prefix of a
// longer code, verified by comparing each pair's shared high bits.
func TestCanonicalCodesAreProperlyNested(t *testing.T) {
	for _, kind := range []Kind{LumaDC, ChromaDC, LumaAC, ChromaAC} {
		table := Get(kind)
		type entry struct {
			code   uint32
			length uint8
		}
		var entries []entry
		for _, sym := range table.symbols {
			code, length, ok := table.Code(sym)
			if !ok {
				t.Fatalf("symbol %#x missing from its own table", sym)
			}
			entries = append(entries, entry{code, length})
		}
		for i, a := range entries {
			for j, b := range entries {
				if i == j || a.length >= b.length {
					continue
				}
				if a.code == b.code>>(b.length-a.length) {
					t.Errorf("code %d (len %d) is a prefix of %d (len %d)", a.code, a.length, b.code, b.length)
				}
			}
		}
	}
}

func TestLengthsSumToSymbolCount(t *testing.T) {
	for _, kind := range []Kind{LumaDC, ChromaDC, LumaAC, ChromaAC} {
		table := Get(kind)
		var total int
		for _, c := range table.Lengths() {
			total += int(c)
		}
		if total != len(table.Symbols()) {
			t.Errorf("lengths sum to %d, want %d", total, len(table.Symbols()))
		}
	}
}

func TestLumaDCKnownCode(t *testing.T) {
	// Annex K luma DC: symbol 0x00 is the single 2-bit code, value 0b00.
	table := Get(LumaDC)
	code, length, ok := table.Code(0x00)
	if !ok || length != 2 || code != 0b00 {
		t.Errorf("Code(0x00) = %d,%d,%v, want 0,2,true", code, length, ok)
	}
}

func TestGetReturnsSingleton(t *testing.T) {
	a := Get(LumaAC)
	b := Get(LumaAC)
	if a != b {
		t.Error("Get(LumaAC) returned distinct instances")
	}
}

func TestZigZagOrderIsPermutation(t *testing.T) {
	var seen [64]bool
	for _, idx := range ZigZagOrder {
		if idx < 0 || idx >= 64 || seen[idx] {
			t.Fatalf("ZigZagOrder is not a permutation at index value %d", idx)
		}
		seen[idx] = true
	}
}

func TestZigZagKnownOrder(t *testing.T) {
	var block [64]int16
	for i := range block {
		block[i] = int16(i)
	}
	out := ZigZag(block)
	// Row-major index 8 (row 1, col 0) is the 3rd element visited in the
	// zig-zag scan.
	if out[2] != 8 {
		t.Errorf("ZigZag()[2] = %d, want 8", out[2])
	}
}
