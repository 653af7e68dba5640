package bitpack

import (
	"bytes"
	"testing"
)

func TestPackMSBFirst(t *testing.T) {
	bits := Pack([]uint16{2047, 0, 3})
	if len(bits) != 33 {
		t.Fatalf("expected 33 bits, got %d", len(bits))
	}
	for i := 0; i < 11; i++ {
		if !bits[i] {
			t.Fatalf("expected bit %d set for 2047", i)
		}
	}
	for i := 11; i < 22; i++ {
		if bits[i] {
			t.Fatalf("expected bit %d clear for 0", i)
		}
	}
	want := []bool{false, false, false, false, false, false, false, false, false, true, true}
	if !Equal(bits[22:], want) {
		t.Fatalf("unexpected bits for 3: %v", bits[22:])
	}
}

// Why(中文): 末尾不足 8 位时必须在低位补零，宽松模式的最后一个字节依赖这一点。
// Why(English): A trailing partial byte is zero-padded on the low end; lenient output's final byte depends on it.
func TestToBytesPadsTrailingPartialByte(t *testing.T) {
	got := ToBytes([]bool{true, false, true, true, true, true, true, true, true, true, false})
	want := []byte{0xbf, 0xc0}
	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected bytes: got %x want %x", got, want)
	}
	if got := ToBytes(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %x", got)
	}
}

func TestSplitSegments(t *testing.T) {
	for _, words := range []int{12, 15, 18, 21, 24} {
		bits := make([]bool, words*BitsPerWord)
		ent, cs := Split(bits)
		if len(ent) != 32*words/3 || len(cs) != words/3 {
			t.Fatalf("%d words: expected %d/%d, got %d/%d", words, 32*words/3, words/3, len(ent), len(cs))
		}
	}
}

func TestChecksumZeroEntropy(t *testing.T) {
	// SHA-256 of 16 zero bytes starts with 0x37.
	got := Checksum(make([]byte, 16), 8)
	want := []bool{false, false, true, true, false, true, true, true}
	if !Equal(got, want) {
		t.Fatalf("unexpected checksum bits: %v", got)
	}
}

func TestEqual(t *testing.T) {
	if Equal([]bool{true}, []bool{true, false}) {
		t.Fatalf("expected length mismatch to be unequal")
	}
	if !Equal(nil, []bool{}) {
		t.Fatalf("expected empty slices to be equal")
	}
}
