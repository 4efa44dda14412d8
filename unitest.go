// Package unitest provides a small record/replay unit-test harness for Go: a
// test runner with per-test SetUp/TearDown fixtures, and call-expectation
// mocks generated from interfaces.
//
// Expectations are registered before the code under test runs. Each real call
// to a mocked method consumes the oldest expectation for that method, fails
// the test on any argument divergence, and returns the registered values.
// Expectations left unconsumed when the test ends fail it too, so call counts
// always match exactly.
//
// This is the public API entry point. Implementation lives in internal/core.
package unitest

import (
	"github.com/toejough/unitest/internal/core"
)

// Case is a single test function registered without a suite.
type Case = core.Case

// Config contains options for the entire test run.
type Config = core.Config

// ConsoleLogger prints per-test results and a summary to standard output.
type ConsoleLogger = core.ConsoleLogger

// Expectation is a pre-registered (arguments, response) record for a mocked
// method.
type Expectation = core.Expectation

// JUnitLogger writes a JUnit XML report at the end of the run.
type JUnitLogger = core.JUnitLogger

// NewJUnitLogger creates a logger that writes a JUnit XML file to path.
func NewJUnitLogger(path string) *JUnitLogger {
	return core.NewJUnitLogger(path)
}

// Matcher defines the interface for flexible value matching. Concrete
// matchers live in the match package; gomega matchers work too.
type Matcher = core.Matcher

// MockController owns the expectation queues for one test's mocks.
type MockController = core.MockController

// NewMockController creates a controller bound to the given reporter.
func NewMockController(r Reporter) *MockController {
	return core.NewMockController(r)
}

// MockedMethod is the handle for a single method on a mocked interface.
type MockedMethod = core.MockedMethod

// MultiLogger fans run events out to several loggers.
type MultiLogger = core.MultiLogger

// NullLogger returns a RunLogger that discards everything.
func NullLogger() RunLogger {
	return core.NullLogger()
}

// Reporter is the minimal interface unitest needs from test frameworks.
// Satisfied by *testing.T and by unitest's own *T.
type Reporter = core.Reporter

// Results aggregates the outcome of a whole run.
type Results = core.Results

// RunLogger receives status information about each test.
type RunLogger = core.RunLogger

// T is the fixture context passed to each test function.
type T = core.T

// TestResult is the outcome of a single test function.
type TestResult = core.TestResult

// Functions re-exported from internal/core.

// Main runs the suites, prints the summary, and exits the process with a
// non-zero code when any test failed.
func Main(cfg Config, suites ...any) {
	core.Main(cfg, suites...)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Run executes every test in the given suites sequentially and returns the
// aggregated results.
func Run(cfg Config, suites ...any) Results {
	return core.Run(cfg, suites...)
}
