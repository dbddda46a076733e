package grammar

import (
	"bytes"

	"github.com/valeko/httpval/internal/constraints"
)

const upperhex = "0123456789ABCDEF"

// FormatByte formats b as exactly two uppercase hexadecimal digits.
// It is the building block of percent-escaping: FormatByte(10) is "0A",
// FormatByte(255) is "FF".
func FormatByte(b byte) string {
	return string([]byte{upperhex[b>>4], upperhex[b&15]})
}

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && IsHexChar(s[i+1]) && IsHexChar(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// A nil shouldEscape escapes everything outside the token rule.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsTokenChar(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHexChar(s[i+1]) && IsHexChar(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// IsHexChar checks the HEXDIG rule.
func IsHexChar(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
