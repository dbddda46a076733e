package header

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/valeko/httpval/internal/util"
)

// Constructors for well-known headers. Each one pairs a canonical name from
// the registry in names.go with a fixed value-formatting rule: multi-valued
// forms join their arguments with ", " (cookies with "; "), structured forms
// delegate rendering to the argument's own String method, dates use the
// RFC 1123 format of [http.TimeFormat]. The names are legal tokens by
// construction, so all constructors go through raw.

func joinEntries[E any](sep string, entries []E) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i := range entries {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(sb, entries[i])
	}
	return sb.String()
}

func httpTime(t time.Time) string { return t.UTC().Format(http.TimeFormat) }

func Accept(ranges ...string) Header { return raw(NameAccept, joinEntries(", ", ranges)) }

func AcceptCharset(charsets ...string) Header { return raw(NameAcceptCharset, joinEntries(", ", charsets)) }

func AcceptEncoding(encodings ...string) Header {
	return raw(NameAcceptEncoding, joinEntries(", ", encodings))
}

func AcceptLanguage(tags ...string) Header { return raw(NameAcceptLanguage, joinEntries(", ", tags)) }

func AccessControlAllowHeaders(names ...string) Header {
	return raw(NameAccessControlAllowHeaders, joinEntries(", ", names))
}

func AccessControlAllowMethods(methods ...fmt.Stringer) Header {
	return raw(NameAccessControlAllowMethods, joinEntries(", ", methods))
}

func AccessControlAllowOrigin(origin string) Header {
	return raw(NameAccessControlAllowOrigin, origin)
}

func AccessControlExposeHeaders(names ...string) Header {
	return raw(NameAccessControlExposeHeaders, joinEntries(", ", names))
}

func AccessControlMaxAge(seconds int) Header {
	return raw(NameAccessControlMaxAge, strconv.Itoa(seconds))
}

func Age(seconds int) Header { return raw(NameAge, strconv.Itoa(seconds)) }

func Allow(methods ...string) Header { return raw(NameAllow, joinEntries(", ", methods)) }

func Authorization(credentials string) Header { return raw(NameAuthorization, credentials) }

func CacheControl(directives ...string) Header {
	return raw(NameCacheControl, joinEntries(", ", directives))
}

func Connection(options ...string) Header { return raw(NameConnection, joinEntries(", ", options)) }

func ContentEncoding(encodings ...string) Header {
	return raw(NameContentEncoding, joinEntries(", ", encodings))
}

func ContentLanguage(tags ...string) Header { return raw(NameContentLanguage, joinEntries(", ", tags)) }

func ContentLength(n int64) Header { return raw(NameContentLength, strconv.FormatInt(n, 10)) }

func ContentType(mediaType string) Header { return raw(NameContentType, mediaType) }

// Cookie joins multiple request cookies into the single Cookie header with
// the "; " separator of RFC 6265.
func Cookie(cookies ...fmt.Stringer) Header { return raw(NameCookie, joinEntries("; ", cookies)) }

func Date(t time.Time) Header { return raw(NameDate, httpTime(t)) }

func ETag(tag string) Header { return raw(NameETag, tag) }

func Expires(t time.Time) Header { return raw(NameExpires, httpTime(t)) }

func Host(host string) Header { return raw(NameHost, host) }

func IfModifiedSince(t time.Time) Header { return raw(NameIfModifiedSince, httpTime(t)) }

func IfNoneMatch(tags ...string) Header { return raw(NameIfNoneMatch, joinEntries(", ", tags)) }

func IfUnmodifiedSince(t time.Time) Header { return raw(NameIfUnmodifiedSince, httpTime(t)) }

func LastModified(t time.Time) Header { return raw(NameLastModified, httpTime(t)) }

func Location(uri string) Header { return raw(NameLocation, uri) }

func Origin(origin string) Header { return raw(NameOrigin, origin) }

func ProxyAuthorization(credentials string) Header {
	return raw(NameProxyAuthorization, credentials)
}

func Referer(uri string) Header { return raw(NameReferer, uri) }

func RetryAfter(seconds int) Header { return raw(NameRetryAfter, strconv.Itoa(seconds)) }

func Server(product string) Header { return raw(NameServer, product) }

func SetCookie(c fmt.Stringer) Header { return raw(NameSetCookie, c.String()) }

func TransferEncoding(encodings ...string) Header {
	return raw(NameTransferEncoding, joinEntries(", ", encodings))
}

func UserAgent(product string) Header { return raw(NameUserAgent, product) }

func Vary(names ...string) Header { return raw(NameVary, joinEntries(", ", names)) }

func WWWAuthenticate(challenge string) Header { return raw(NameWWWAuthenticate, challenge) }

func XForwardedFor(addrs ...string) Header { return raw(NameXForwardedFor, joinEntries(", ", addrs)) }

func XForwardedHost(host string) Header { return raw(NameXForwardedHost, host) }

func XForwardedProto(proto string) Header { return raw(NameXForwardedProto, proto) }
