package unitest

import (
	"github.com/toejough/unitest/internal/core"
)

// ControllerFor returns the MockController for the given reporter, creating
// one if needed. Multiple calls with the same Reporter return the same
// controller, so every mock in a test shares one expectation scope.
// Generated mock constructors call this.
func ControllerFor(r Reporter) *MockController {
	return core.ControllerFor(r)
}

// Verify checks the controller registered for r, if any, for unconsumed
// expectations. Tests relying on Cleanup-based verification (anything run
// under the unitest runner or go test) never need to call this; it exists
// for reporters without Cleanup support.
func Verify(r Reporter) {
	core.Verify(r)
}
