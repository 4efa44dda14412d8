// Package basic demonstrates mock generation for a plain interface with
// value parameters and single return values.
package basic

//go:generate go run github.com/toejough/unitest/mockgen Ops --out opsmock.go

// Ops is a small dependency interface with two methods.
type Ops interface {
	// Add returns the sum of its arguments.
	Add(a int, b int) int
	// Store persists a value under a key.
	Store(key string, value []byte) error
}
