package header

import (
	"sync"

	"github.com/valeko/httpval/internal/util"
)

// wellKnownSensitive holds the names whose values never appear in redacted
// output, keyed by lower-cased name. Static process data; never mutated
// after init.
var wellKnownSensitive = map[string]bool{
	"authorization":       true,
	"cookie":              true,
	"set-cookie":          true,
	"proxy-authorization": true,
}

var customSensitive sync.Map // map[string]struct{}

// RegisterSensitive marks a header name as sensitive so that [Header.Redacted]
// masks its value. The lookup is case-insensitive.
func RegisterSensitive(name string) {
	customSensitive.Store(util.LCase(name), struct{}{})
}

// UnregisterSensitive removes a name previously added with [RegisterSensitive].
// The built-in sensitive names cannot be removed.
func UnregisterSensitive(name string) {
	customSensitive.Delete(util.LCase(name))
}

// IsSensitive reports whether name identifies a header whose value must not
// be rendered in logs. The comparison is case-insensitive.
func IsSensitive[T ~string](name T) bool {
	k := util.LCase(string(name))
	if wellKnownSensitive[k] {
		return true
	}
	_, ok := customSensitive.Load(k)
	return ok
}
