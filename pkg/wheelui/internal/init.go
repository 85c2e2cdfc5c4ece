// Package internal contains logging setup shared by the wheelui packages.
// Types and functions in this package are not part of the public API.
package internal
