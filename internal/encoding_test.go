package internal

import (
	"bytes"
	"testing"
)

func testEncoding(t *testing.T) {
	t.Run("nibble", testEncodingNibble)
	t.Run("decode", testEncodingDecode)
}

func testEncodingNibble(t *testing.T) {
	for i := 0; i < 256; i++ {
		var (
			c        = byte(i)
			expected byte
			valid    = true
		)

		switch {
		case c >= '0' && c <= '9':
			expected = c - '0'
		case c >= 'A' && c <= 'F':
			expected = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			expected = c - 'a' + 10
		default:
			valid = false
		}

		actual, ok := Nibble(c)
		if ok != valid {
			t.Errorf("[%q]: expected validity [%t], got [%t]", c, valid, ok)
		}

		if actual != expected {
			t.Errorf("[%q]: expected [%d], got [%d]", c, expected, actual)
		}
	}
}

var nibbleCases = [...]struct {
	src     string
	dec     []byte
	invalid int
}{
	{"", []byte{}, -1},
	{"09af", []byte{0, 9, 10, 15}, -1},
	{"DEADbeef", []byte{13, 14, 10, 13, 11, 14, 14, 15}, -1},
	{"0g1z", []byte{0, 0, 1, 0}, 1},
	{"-", []byte{0}, 0},
}

func testEncodingDecode(t *testing.T) {
	for _, c := range nibbleCases {
		dst := make([]byte, len(c.src))
		invalid := DecodeNibbles(dst, c.src)

		if !bytes.Equal(dst, c.dec) {
			t.Errorf("[%s]: expected [%v], got [%v]", c.src, c.dec, dst)
		}

		if invalid != c.invalid {
			t.Errorf("[%s]: expected invalid index [%d], got [%d]", c.src, c.invalid, invalid)
		}
	}

	t.Run("short-dst-panics", func(t *testing.T) {
		defer func() {
			if err := recover(); err == nil {
				t.Fatal("expected a panic")
			}
		}()

		DecodeNibbles(make([]byte, 1), "ab")
	})
}
