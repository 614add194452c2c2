package loki

import (
	"github.com/loki-project/loki-go/internal"
)

// MaxHexLen is the length of the longest hex string HexToBase32z accepts, that of a hex
// encoded 32-byte public key.
const MaxHexLen = 64

// HexToBase32z returns the base32z encoding of the hex string src.
//
// Every character of src becomes one byte holding its value (0-15) before encoding, it is not
// paired up with its neighbour. Characters which are not hexadecimal digits are read as '0'.
// Use HexToBase32zStrict to reject them instead.
//
// Since the encoding of more than 40 bytes does not fit into MaxEncodedLen characters, inputs
// of 41 characters and up result in a *CapacityExceededError.
//
// HexToBase32z panics when src is longer than MaxHexLen. Callers are expected to only ever
// hand it fixed-length keys.
func HexToBase32z(src string) (string, error) {
	var bin [MaxHexLen]byte
	if len(src) > len(bin) {
		panic(hexTooLongErrMsg)
	}

	internal.DecodeNibbles(bin[:], src)

	return EncodeBase32z(bin[:len(src)])
}

// HexToBase32zStrict works like HexToBase32z, but returns an *InvalidHexError for the first
// character of src which is not a hexadecimal digit.
func HexToBase32zStrict(src string) (string, error) {
	var bin [MaxHexLen]byte
	if len(src) > len(bin) {
		panic(hexTooLongErrMsg)
	}

	if i := internal.DecodeNibbles(bin[:], src); i >= 0 {
		return "", &InvalidHexError{
			Pos:  i,
			Char: src[i],
		}
	}

	return EncodeBase32z(bin[:len(src)])
}

// ExpTable returns a copy of the table Exp2 takes its 2^(M/256) factors from. Entry i holds
// 2^((i-128)/256).
func ExpTable() [expTableSize]float64 {
	return expTable
}
