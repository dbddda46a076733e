package header

import (
	"net/textproto"

	"github.com/valeko/httpval/internal/grammar"
	"github.com/valeko/httpval/internal/util"
)

// Name represents an HTTP header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(string(n)) }

// Equal compares this Name with another for equality. Names are equal when
// their canonical forms match.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

// Canonical names of well-known HTTP headers.
const (
	NameAccept                     Name = "Accept"
	NameAcceptCharset              Name = "Accept-Charset"
	NameAcceptEncoding             Name = "Accept-Encoding"
	NameAcceptLanguage             Name = "Accept-Language"
	NameAccessControlAllowHeaders  Name = "Access-Control-Allow-Headers"
	NameAccessControlAllowMethods  Name = "Access-Control-Allow-Methods"
	NameAccessControlAllowOrigin   Name = "Access-Control-Allow-Origin"
	NameAccessControlExposeHeaders Name = "Access-Control-Expose-Headers"
	NameAccessControlMaxAge        Name = "Access-Control-Max-Age"
	NameAge                        Name = "Age"
	NameAllow                      Name = "Allow"
	NameAuthorization              Name = "Authorization"
	NameCacheControl               Name = "Cache-Control"
	NameConnection                 Name = "Connection"
	NameContentEncoding            Name = "Content-Encoding"
	NameContentLanguage            Name = "Content-Language"
	NameContentLength              Name = "Content-Length"
	NameContentType                Name = "Content-Type"
	NameCookie                     Name = "Cookie"
	NameDate                       Name = "Date"
	NameETag                       Name = "ETag"
	NameExpires                    Name = "Expires"
	NameHost                       Name = "Host"
	NameIfModifiedSince            Name = "If-Modified-Since"
	NameIfNoneMatch                Name = "If-None-Match"
	NameIfUnmodifiedSince          Name = "If-Unmodified-Since"
	NameLastModified               Name = "Last-Modified"
	NameLocation                   Name = "Location"
	NameOrigin                     Name = "Origin"
	NameProxyAuthorization         Name = "Proxy-Authorization"
	NameReferer                    Name = "Referer"
	NameRetryAfter                 Name = "Retry-After"
	NameServer                     Name = "Server"
	NameSetCookie                  Name = "Set-Cookie"
	NameTransferEncoding           Name = "Transfer-Encoding"
	NameUserAgent                  Name = "User-Agent"
	NameVary                       Name = "Vary"
	NameWWWAuthenticate            Name = "WWW-Authenticate"
	NameXForwardedFor              Name = "X-Forwarded-For"
	NameXForwardedHost             Name = "X-Forwarded-Host"
	NameXForwardedProto            Name = "X-Forwarded-Proto"
)

// hdrNames maps MIME-canonicalized spellings to the HTTP canonical form
// where the two differ.
var hdrNames = map[string]Name{
	"Etag":             NameETag,
	"Www-Authenticate": NameWWWAuthenticate,
	"Content-Md5":      "Content-MD5",
	"Te":               "TE",
	"X-Xss-Protection": "X-XSS-Protection",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen
// to upper case; the rest are converted to lowercase. For example, the canonical
// name for "accept-encoding" is "Accept-Encoding". Spellings that deviate from
// that rule, such as "ETag" and "WWW-Authenticate", are mapped explicitly.
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}

	cn := textproto.CanonicalMIMEHeaderKey(string(name))
	if n, ok := hdrNames[cn]; ok {
		return n
	}
	return Name(cn)
}
