package header

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/valeko/httpval/internal/errorutil"
	"github.com/valeko/httpval/internal/grammar"
	"github.com/valeko/httpval/internal/ioutil"
	"github.com/valeko/httpval/internal/util"
)

// ErrInvalidName is returned by [New] when the header name fails the
// RFC 2616 token rule.
var ErrInvalidName error = errorutil.Error("invalid header name")

// redactedValue replaces sensitive header values in redacted output.
const redactedValue = "***"

// Header represents a single HTTP header field.
//
// A Header is an immutable value: once constructed it never changes and is
// safe to share across goroutines without synchronization. The name keeps
// the caller's original casing for faithful serialization; identity checks
// through [Header.Is] and [Header.Equal] are case-insensitive as required
// by HTTP semantics.
//
// Both name and value are expected to be already encoded. [New] enforces
// the token rule on the name; the well-known constructors in this package
// bypass the check because their names come from the canonical table.
type Header struct {
	name  string
	value string
}

// New creates a Header after validating name against the RFC 2616 token
// rule. The returned error wraps [ErrInvalidName] and names the offending
// character. Prefer New for any externally sourced name.
func New(name, value string) (Header, error) {
	if err := grammar.ValidateToken("header name", name); err != nil {
		return Header{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, err))
	}
	return Header{name: name, value: value}, nil
}

// MustNew is like [New] but panics on an invalid name. It is intended for
// call sites where an invalid name is a programming error, typically
// package-level header literals.
func MustNew(name, value string) Header {
	return util.Must2(New(name, value)) //errtrace:skip
}

// raw constructs a Header without validation. Only the well-known
// constructors may use it; their names come from the canonical table and
// are statically known to be legal tokens.
func raw(name Name, value string) Header {
	return Header{name: string(name), value: value}
}

// Name returns the header name in the caller's original casing.
func (hdr Header) Name() string { return hdr.name }

// Value returns the raw header value.
func (hdr Header) Value() string { return hdr.value }

// CanonicName returns the canonical form of the header name.
func (hdr Header) CanonicName() Name { return CanonicName(hdr.name) }

// Is reports whether the header name equals name under case-insensitive
// comparison. Use it instead of comparing [Header.Name] directly: the
// stored name preserves the caller's casing while header identity does not
// depend on case.
func (hdr Header) Is(name string) bool { return util.EqFold(hdr.name, name) }

// IsValid checks whether the header name is a syntactically valid token.
// Headers built through [New] are always valid.
func (hdr Header) IsValid() bool { return grammar.IsToken(hdr.name) }

// Equal compares this header with another for equality: names compare
// case-insensitively, values exactly.
func (hdr Header) Equal(val any) bool {
	var other Header
	switch v := val.(type) {
	case Header:
		other = v
	case *Header:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.Is(other.name) && hdr.value == other.value
}

// Hash returns a hash consistent with [Header.Equal]: headers differing
// only in name case hash identically. The case-folded name and the raw
// value feed a single FNV-1a stream separated by a NUL byte.
func (hdr Header) Hash() uint64 {
	h := fnv.New64a()
	io.WriteString(h, util.LCase(hdr.name)) //nolint:errcheck
	h.Write([]byte{0})                      //nolint:errcheck
	io.WriteString(h, hdr.value)            //nolint:errcheck
	return h.Sum64()
}

// RenderTo writes the header to the provided writer as "<name>: <value>".
func (hdr Header) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(hdr.name)  //nolint:errcheck
	cw.WriteString(": ")      //nolint:errcheck
	cw.WriteString(hdr.value) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// RenderRedactedTo is like [Header.RenderTo] but masks the value with "***"
// when the name is registered as sensitive.
func (hdr Header) RenderRedactedTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(hdr.name) //nolint:errcheck
	cw.WriteString(": ")     //nolint:errcheck
	if IsSensitive(hdr.name) {
		cw.WriteString(redactedValue) //nolint:errcheck
	} else {
		cw.WriteString(hdr.value) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// String renders the header verbatim as "<name>: <value>". It is the form
// intended for wire serialization and never redacts; use [Header.Redacted]
// when the output may end up in logs.
func (hdr Header) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Redacted renders the header like [Header.String] but substitutes "***"
// for the value when the name is sensitive (Authorization, Cookie,
// Set-Cookie, Proxy-Authorization and anything added through
// [RegisterSensitive]).
func (hdr Header) Redacted() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderRedactedTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Header) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Redacted()))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Header
		type Header hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Header(hdr))
		return
	}
}

// LogValue implements slog.LogValuer. Headers always log in redacted form.
func (hdr Header) LogValue() slog.Value {
	return slog.StringValue(hdr.Redacted())
}

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (hdr Header) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(headerData{Name: hdr.name, Value: hdr.value}))
}

var zeroHeader Header

// UnmarshalJSON decodes a {"name": ..., "value": ...} object and validates
// the name through [New].
func (hdr *Header) UnmarshalJSON(data []byte) error {
	var hd headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		*hdr = zeroHeader
		return errtrace.Wrap(err)
	}

	h, err := New(hd.Name, hd.Value)
	if err != nil {
		*hdr = zeroHeader
		return errtrace.Wrap(err)
	}

	*hdr = h
	return nil
}
