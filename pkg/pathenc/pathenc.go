package pathenc

import (
	"unicode/utf8"
)

// Escaped bytes land in escapeMin..escapeMax. Only bytes >= 0x80 can be
// invalid on their own, so the band below 0xDC80 is never produced.
const (
	escapeBase = 0xDC00
	escapeMin  = 0xDC80
	escapeMax  = 0xDCFF
)

// Decode converts raw bytes to text. Every byte that is not part of a valid
// UTF-8 sequence is escaped into the surrogate band, one byte at a time. The
// returned bool is true when no escape occurred, i.e. the input was already
// valid text.
func Decode(b []byte) (string, bool) {
	if utf8.Valid(b) {
		return string(b), true
	}

	out := make([]byte, 0, len(b)+8)
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			out = appendSurrogate(out, escapeBase+rune(b[i]))
			i++

			continue
		}

		out = append(out, b[i:i+size]...)
		i += size
	}

	return string(out), false
}

// DecodeString is [Decode] for string-typed raw bytes.
func DecodeString(s string) (string, bool) {
	return Decode([]byte(s))
}

// Encode converts text back to raw bytes. Code points in the surrogate
// escape band become their original single byte; everything else keeps its
// multi-byte encoding, including improper code points such as lone
// surrogates outside the band. Encode(Decode(b)) returns b exactly.
func Encode(s string) []byte {
	if !containsEscape(s) {
		return []byte(s)
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if r, ok := escapeAt(s, i); ok {
			out = append(out, byte(r-escapeBase))
			i += 3

			continue
		}

		out = append(out, s[i])
		i++
	}

	return out
}

// Valid reports whether s is free of escape-band code points, i.e. whether
// it represents a path that was valid text to begin with.
func Valid(s string) bool {
	return !containsEscape(s)
}

func containsEscape(s string) bool {
	for i := 0; i+3 <= len(s); i++ {
		if _, ok := escapeAt(s, i); ok {
			return true
		}
	}

	return false
}

// escapeAt decodes the three-byte surrogate sequence starting at i, if one
// is present and falls inside the escape band.
func escapeAt(s string, i int) (rune, bool) {
	if i+3 > len(s) {
		return 0, false
	}
	if s[i] != 0xED || s[i+1]&0xC0 != 0x80 || s[i+2]&0xC0 != 0x80 {
		return 0, false
	}

	r := rune(s[i]&0x0F)<<12 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F)
	if r < escapeMin || r > escapeMax {
		return 0, false
	}

	return r, true
}

// appendSurrogate writes the three-byte encoding of a surrogate code point,
// which [utf8.AppendRune] refuses to produce.
func appendSurrogate(dst []byte, r rune) []byte {
	return append(dst,
		0xE0|byte(r>>12),
		0x80|byte(r>>6)&0x3F,
		0x80|byte(r)&0x3F,
	)
}
