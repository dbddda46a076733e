// Package header models a single HTTP header field as a validated,
// immutable value.
//
// # Construction
//
// [New] validates the name against the RFC 2616 token rule and returns an
// error wrapping [ErrInvalidName] on failure; it is the constructor for any
// externally sourced name:
//
//	hdr, err := header.New("X-Request-ID", id)
//
// [MustNew] panics instead of returning the error and suits package-level
// literals. The well-known constructors (for example [ContentType],
// [ContentLength], [XForwardedFor]) skip the check because their names come
// from the canonical table in this package.
//
// # Identity and equality
//
// Header names are case-insensitive per HTTP semantics, but the stored name
// keeps the caller's original casing so serialization is faithful. Use
// [Header.Is] to test "is this the X header"; [Header.Equal] additionally
// requires an exact value match. [Header.Hash] is consistent with Equal.
//
// # Rendering and redaction
//
// [Header.String] renders "<name>: <value>" verbatim and is meant for wire
// serialization. [Header.Redacted] masks the values of sensitive headers
// (Authorization, Cookie, Set-Cookie, Proxy-Authorization, plus any name
// added with [RegisterSensitive]) with "***" and is the form intended for
// logging. Header implements slog.LogValuer with the redacted rendering, so
// passing a Header to a structured logger never leaks credentials.
package header
