// Package grammar implements the character-level grammar rules the library
// relies on: the RFC 2616 token rule for header field names and the
// percent-escaping primitives.
package grammar

import (
	"braces.dev/errtrace"

	"github.com/valeko/httpval/internal/constraints"
	"github.com/valeko/httpval/internal/errorutil"
)

// separatorChars holds the RFC 2616 separators in the printable range.
// SP, HT, CTLs and non-ASCII bytes are rejected by the range check in
// IsTokenChar and do not need entries here.
var separatorChars = map[byte]bool{
	'(':  true,
	')':  true,
	'<':  true,
	'>':  true,
	'@':  true,
	',':  true,
	';':  true,
	':':  true,
	'\\': true,
	'"':  true,
	'/':  true,
	'[':  true,
	']':  true,
	'?':  true,
	'=':  true,
	'{':  true,
	'}':  true,
}

// IsTokenChar checks the char rule of RFC 2616 token: any visible ASCII
// character that is not a separator.
func IsTokenChar(c byte) bool {
	return c > ' ' && c < 0x7f && !separatorChars[c]
}

// IsToken checks whether s is a non-empty RFC 2616 token.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsTokenChar(s[i]) {
			return false
		}
	}
	return true
}

// ValidateToken checks s against the RFC 2616 token rule and reports the
// first offending character. The label names the context being validated
// and is included in the error message.
func ValidateToken[T constraints.Byteseq](label string, s T) error {
	if len(s) == 0 {
		return errtrace.Wrap(errorutil.Errorf("%s: empty token", label))
	}
	for i := 0; i < len(s); i++ {
		if !IsTokenChar(s[i]) {
			return errtrace.Wrap(errorutil.Errorf(
				"%s: invalid token %q: character %q at position %d",
				label, string(s), s[i], i,
			))
		}
	}
	return nil
}
