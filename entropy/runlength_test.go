package entropy

import "testing"

func TestBitLength(t *testing.T) {
	cases := []struct {
		in   int16
		want uint8
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{1023, 10},
	}
	for _, c := range cases {
		if got := bitLength(c.in); got != c.want {
			t.Errorf("bitLength(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAmplitudeEncoding(t *testing.T) {
	if got := amplitude(5, bitLength(5)); got != 5 {
		t.Errorf("amplitude(5) = %d, want 5", got)
	}
	// -5 has bit length 3 (abs=5=0b101); biased value = -5 + 8 - 1 = 2
	if got := amplitude(-5, bitLength(5)); got != 2 {
		t.Errorf("amplitude(-5) = %d, want 2", got)
	}
}

// TestRunLengthEncodeAllZeroBlock is the S2 scenario: a fully level-shifted
// block of zeros quantizes to all-zero coefficients, producing a DC
// (run=0,size=0) symbol followed by a single EOB.
func TestRunLengthEncodeAllZeroBlock(t *testing.T) {
	var zigzag [64]int16
	var prevDC int16

	symbols, err := RunLengthEncode(&prevDC, zigzag)
	if err != nil {
		t.Fatalf("RunLengthEncode: %v", err)
	}
	if len(symbols) != 2 {
		t.Fatalf("len(symbols) = %d, want 2", len(symbols))
	}
	if symbols[0].Symbol != 0x00 || symbols[0].Amplitude != 0 {
		t.Errorf("DC symbol = %+v, want {0x00,0}", symbols[0])
	}
	if symbols[1].Symbol != 0x00 {
		t.Errorf("EOB symbol = %#x, want 0x00", symbols[1].Symbol)
	}
	if prevDC != 0 {
		t.Errorf("prevDC = %d, want 0", prevDC)
	}
}

func TestRunLengthEncodeDCDeltaAgainstPredictor(t *testing.T) {
	var zigzag [64]int16
	zigzag[0] = 12
	prevDC := int16(5)

	symbols, err := RunLengthEncode(&prevDC, zigzag)
	if err != nil {
		t.Fatalf("RunLengthEncode: %v", err)
	}
	// delta = 12-5 = 7, bit length 3, positive so amplitude passes through.
	if symbols[0].Symbol&0x0f != 3 || symbols[0].Amplitude != 7 {
		t.Errorf("DC symbol = %+v, want size=3 amplitude=7", symbols[0])
	}
	if prevDC != 12 {
		t.Errorf("prevDC = %d, want 12", prevDC)
	}
}

func TestRunLengthEncodeZeroRunRequiresZRL(t *testing.T) {
	var zigzag [64]int16
	zigzag[0] = 0
	zigzag[63] = 1 // 62 zeros between DC and this AC coefficient
	var prevDC int16

	symbols, err := RunLengthEncode(&prevDC, zigzag)
	if err != nil {
		t.Fatalf("RunLengthEncode: %v", err)
	}
	// 62 zeros = 3 full ZRL (48) + remaining 14 in the final symbol's run nibble.
	zrlCount := 0
	for _, s := range symbols {
		if s.Symbol == 0xf0 {
			zrlCount++
		}
	}
	if zrlCount != 3 {
		t.Errorf("zrlCount = %d, want 3", zrlCount)
	}
	last := symbols[len(symbols)-1]
	wantRun := uint8(14)
	if last.Symbol>>4 != wantRun || last.Symbol&0x0f != 1 || last.Amplitude != 1 {
		t.Errorf("last symbol = %#x amp=%d, want run=%d size=1 amp=1", last.Symbol, last.Amplitude, wantRun)
	}
}

func TestRunLengthEncodeUsesOwnACBitLengthNotDCs(t *testing.T) {
	// A large DC delta paired with a small AC coefficient: if the AC
	// amplitude were (incorrectly) biased using the DC bit length, its
	// value would differ from the correctly-biased one here.
	var zigzag [64]int16
	zigzag[0] = 1000 // large DC bit length
	zigzag[1] = -1   // AC coefficient with its own bit length of 1
	var prevDC int16

	symbols, err := RunLengthEncode(&prevDC, zigzag)
	if err != nil {
		t.Fatalf("RunLengthEncode: %v", err)
	}
	ac := symbols[1]
	if ac.Symbol&0x0f != 1 {
		t.Fatalf("AC size = %d, want 1", ac.Symbol&0x0f)
	}
	wantAmplitude := amplitude(-1, 1)
	if ac.Amplitude != wantAmplitude {
		t.Errorf("AC amplitude = %d, want %d (bit length 1, not DC's)", ac.Amplitude, wantAmplitude)
	}
}
