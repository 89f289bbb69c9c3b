package entropy

import (
	"bytes"
	"testing"
)

// TestBitWriterByteStuffing is the S6 scenario: an emitted 0xFF byte must
// be immediately followed by a stuffed 0x00.
func TestBitWriterByteStuffing(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := bw.WriteBits(0xFF, 8); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0xFF, 0x00}) {
		t.Errorf("bytes = % x, want ff 00", got)
	}
}

func TestBitWriterPadsFinalByteWithOnes(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := bw.WriteBits(0b101, 3); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := byte(0b10111111)
	if got := buf.Bytes(); len(got) != 1 || got[0] != want {
		t.Errorf("bytes = % x, want %02x", got, want)
	}
}

func TestBitWriterByteAlignedNeedsNoPadding(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := bw.WriteBits(0xAB, 8); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0xAB}) {
		t.Errorf("bytes = % x, want ab", got)
	}
}
