// Package variadic demonstrates mock generation for interfaces with
// variadic methods. The variadic arguments flatten into the expectation
// queue alongside the fixed ones.
package variadic

//go:generate go run github.com/toejough/unitest/mockgen Logger --out loggermock.go

// Logger is a dependency interface with a variadic method.
type Logger interface {
	// Logf records a formatted message.
	Logf(format string, args ...any)
	// Flush writes buffered messages out and reports how many were written.
	Flush() (int, error)
}
