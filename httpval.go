// Package httpval provides immutable HTTP value types.
//
// The core of the library lives in the header package; see its
// documentation for the Header value type and the well-known header
// constructors.
package httpval

// Version is the current httpval package version.
var Version = "0.0.0"
