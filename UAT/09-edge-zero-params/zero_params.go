// Package zero_params demonstrates mock generation for interfaces whose
// methods take no parameters. This exercises the empty-argument paths in
// expectation matching and code generation.
//
//nolint:revive // Package name intentionally uses underscore for clarity
package zero_params

//go:generate go run github.com/toejough/unitest/mockgen NoParams --out noparamsmock.go

// NoParams is an interface with methods that have no parameters.
type NoParams interface {
	// Get has no parameters and returns a value
	Get() int
	// Execute has no parameters and no meaningful return
	Execute() error
}
