package loki

import "fmt"

const hexTooLongErrMsg = "loki: hex input longer than 64 characters"

// CapacityExceededError gets returned when the base32z encoding of an input does not fit
// into the output buffer of the encoder.
type CapacityExceededError struct {
	Need     int // Length of the complete encoding.
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("loki: base32z encoding needs %d characters, capacity is %d", e.Need, e.Capacity)
}

// InvalidHexError gets returned by strict decoders when the input contains a character which
// is not a hexadecimal digit.
type InvalidHexError struct {
	Pos  int  // Index of the first invalid character.
	Char byte // The character itself.
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("loki: invalid hex character %q at position %d", e.Char, e.Pos)
}
