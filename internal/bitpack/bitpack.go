package bitpack

import "crypto/sha256"

// BitsPerWord is the width of one vocabulary rank.
const BitsPerWord = 11

// Why(中文): 每个索引固定 11 位、高位在前，按短语顺序拼接，这是 BIP39 位流的唯一排列方式。
// Why(English): Each index contributes exactly 11 bits, MSB first, in phrase order.
func Pack(indices []uint16) []bool {
	bits := make([]bool, len(indices)*BitsPerWord)
	for i, idx := range indices {
		for j := 0; j < BitsPerWord; j++ {
			bits[i*BitsPerWord+j] = idx&(1<<(BitsPerWord-1-j)) != 0
		}
	}
	return bits
}

// ToBytes packs bits 8 per byte, MSB first. A trailing partial byte is padded
// with zero bits on the least-significant end.
func ToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out
}

// Split cuts a full BIP39 bit string into its entropy and checksum segments.
// The checksum is len(bits)/33 bits long, i.e. word_count/3.
func Split(bits []bool) (ent, cs []bool) {
	n := len(bits) / 33
	return bits[:len(bits)-n], bits[len(bits)-n:]
}

// Checksum returns the first n bits of SHA-256(entropy).
func Checksum(entropy []byte, n int) []bool {
	sum := sha256.Sum256(entropy)
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = sum[i/8]&(1<<(7-i%8)) != 0
	}
	return bits
}

// Equal reports whether a and b hold the same bits.
func Equal(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
