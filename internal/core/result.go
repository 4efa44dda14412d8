package core

// TestResult is the outcome of a single test function.
type TestResult struct {
	Name       string
	Failed     bool
	Skipped    bool
	SkipReason string
	Errors     []error
}

// Results aggregates the outcome of a whole run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// OK reports whether every test passed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// FailedCount returns the number of failed tests.
func (r Results) FailedCount() int {
	return len(r.Failures)
}

// PassedCount returns the number of tests that ran and passed.
func (r Results) PassedCount() int {
	passed := 0

	for _, t := range r.Tests {
		if !t.Failed && !t.Skipped {
			passed++
		}
	}

	return passed
}

// SkippedCount returns the number of skipped tests.
func (r Results) SkippedCount() int {
	skipped := 0

	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		}
	}

	return skipped
}
