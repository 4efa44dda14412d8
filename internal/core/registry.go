package core

import (
	"sync"
)

// ControllerFor returns the MockController for the given reporter, creating
// one if needed. Multiple calls with the same Reporter return the same
// controller, so every mock in a test shares one expectation scope.
//
// If the Reporter supports Cleanup (like *testing.T and unitest's *T), the
// controller is removed from the registry when the test completes, keeping
// expectation state scoped to a single test rather than the process.
func ControllerFor(r Reporter) *MockController {
	registryMu.Lock()
	defer registryMu.Unlock()

	if ctrl, ok := registry[r]; ok {
		return ctrl
	}

	ctrl := NewMockController(r)
	registry[r] = ctrl

	// Register eviction if the Reporter supports it. NewMockController already
	// registered Verify; eviction only drops the map entry, so the relative
	// cleanup order doesn't matter.
	if cr, ok := r.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, r)
			registryMu.Unlock()
		})
	}

	return ctrl
}

// Verify checks the controller registered for r, if any, for unconsumed
// expectations. Tests that rely on Cleanup-based verification never need to
// call this; it exists for reporters without Cleanup support.
func Verify(r Reporter) {
	registryMu.Lock()

	ctrl, ok := registry[r]

	registryMu.Unlock()

	if !ok {
		return
	}

	ctrl.Verify()
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
	registry = make(map[Reporter]*MockController)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)
