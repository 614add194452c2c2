package internal

const (
	// Characters accepted as hexadecimal digits, in order of their value. Lowercase aliases
	// for the letters get registered separately.
	hex = "0123456789ABCDEF"

	invalidNibble = 0xFF
)

// Decoding LUT, indexed by character.
var nibbles [256]byte

func init() {
	for i := 0; i < len(nibbles); i++ {
		nibbles[i] = invalidNibble
	}

	for i := 0; i < len(hex); i++ {
		nibbles[hex[i]] = byte(i)
	}

	for c := byte('a'); c <= 'f'; c++ {
		nibbles[c] = c - 'a' + 10
	}
}

// Nibble returns the value of the hexadecimal digit c and whether c was one.
func Nibble(c byte) (byte, bool) {
	v := nibbles[c]
	if v == invalidNibble {
		return 0, false
	}

	return v, true
}

// DecodeNibbles writes the value of each character of src to dst, one byte per character.
// dst must be at least as long as src.
//
// Characters which are not hexadecimal digits decode to 0. The index of the first of them is
// returned, or -1 when src only contains valid digits.
func DecodeNibbles(dst []byte, src string) (invalid int) {
	_ = dst[:len(src)] // BCE hint.

	invalid = -1
	for i := 0; i < len(src); i++ {
		v, ok := Nibble(src[i])
		if !ok && invalid < 0 {
			invalid = i
		}

		dst[i] = v
	}

	return invalid
}
