package loki

const (
	// The z-base-32 alphabet. The index of a character is the value of the 5-bit group it encodes.
	// It leaves out 0, l, v and 2 and puts the easier to read characters at the most frequent positions.
	encoding = "ybndrfg8ejkmcpqxot1uwisza345h769"

	// MaxEncodedLen is the capacity of the encoder's output buffer, in characters.
	MaxEncodedLen = 64
)

// EncodedLen returns the length of the base32z encoding of n bytes, ceil(8n/5).
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// EncodeBase32z returns the base32z encoding of src.
//
// src is read as one big-endian bit stream and cut into 5-bit groups, the last of them padded
// with zero bits. No padding characters get appended. The bit order is the one of RFC 4648
// base32, only the alphabet differs.
//
// Encodings longer than MaxEncodedLen characters (more than 40 bytes of input) are not truncated.
// A *CapacityExceededError gets returned instead.
func EncodeBase32z(src []byte) (string, error) {
	var dst [MaxEncodedLen]byte

	n, err := encode(&dst, src)
	if err != nil {
		return "", err
	}

	return string(dst[:n]), nil
}

func encode(dst *[MaxEncodedLen]byte, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	var (
		n    int
		pos  = 1
		bits = 8 // Unconsumed bits in acc.
		acc  = uint32(src[0])
	)

	for bits > 0 || pos < len(src) {
		if bits < 5 {
			if pos < len(src) {
				acc = acc<<8 | uint32(src[pos])
				pos++
				bits += 8
			} else {
				// Last group, pad with zero bits.
				acc <<= 5 - bits
				bits = 5
			}
		}

		if n == len(dst) {
			return n, &CapacityExceededError{
				Need:     EncodedLen(len(src)),
				Capacity: len(dst),
			}
		}

		bits -= 5
		dst[n] = encoding[acc>>bits&0x1F]
		n++

		// Consumed bits are of no further use. Keeps acc from overflowing on long inputs.
		acc &= 1<<bits - 1
	}

	return n, nil
}
