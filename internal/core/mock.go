// Package core provides the internal implementation of unitest's runner and
// mock expectation infrastructure.
package core

import (
	"fmt"
	"strings"
	"sync"

	"github.com/akedrou/textdiff"
)

// Reporter is the minimal interface unitest needs from test frameworks.
// It is satisfied by *testing.T as well as unitest's own *T.
type Reporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Expectation is a single pre-registered call record: the arguments a mocked
// method must be called with, and the response it gives back. Expectations
// are consumed oldest-first by real calls.
type Expectation struct {
	method   string
	args     []any
	returns  []any
	panicVal any
	panics   bool
	consumed bool
}

// AndPanic makes the mocked method panic with the given value when this
// expectation is consumed. Overrides any previously set return values.
func (e *Expectation) AndPanic(value any) *Expectation {
	e.panics = true
	e.panicVal = value

	return e
}

// AndReturn sets the values the mocked method returns when this expectation
// is consumed. Methods with no results need no AndReturn call.
func (e *Expectation) AndReturn(values ...any) *Expectation {
	e.returns = values
	e.panics = false

	return e
}

func (e *Expectation) describe() string {
	rendered := make([]string, len(e.args))
	for i, a := range e.args {
		rendered[i] = renderValue(a)
	}

	return fmt.Sprintf("%s(%s)", e.method, strings.Join(rendered, ", "))
}

// MockController owns the expectation queues for one test's mocks.
// Each mocked method gets its own FIFO queue; a real call pops the oldest
// expectation for that method and fails the test on any divergence.
// Create one per test (or use ControllerFor to share one per Reporter).
type MockController struct {
	r Reporter

	mu       sync.Mutex
	queues   map[string][]*Expectation
	recorded []*Expectation // registration order, for Verify reporting
}

// NewMockController creates a controller bound to the given reporter.
// If the reporter supports Cleanup (like *testing.T and *unitest.T), Verify
// is registered to run automatically when the test ends, so unconsumed
// expectations fail the test without an explicit Verify call.
func NewMockController(r Reporter) *MockController {
	ctrl := &MockController{
		r:      r,
		queues: make(map[string][]*Expectation),
	}

	if cr, ok := r.(cleanupRegistrar); ok {
		cr.Cleanup(ctrl.Verify)
	}

	return ctrl
}

// Method returns the handle for a mocked method with the given name.
// Generated mock code calls this once per interface method.
func (c *MockController) Method(name string) *MockedMethod {
	return &MockedMethod{ctrl: c, name: name}
}

// Verify fails the test if any registered expectation was never consumed.
// This enforces exact call-count matching: every Expect must be answered by
// exactly one real call.
func (c *MockController) Verify() {
	c.r.Helper()

	c.mu.Lock()

	var leftover []string

	for _, e := range c.recorded {
		if !e.consumed {
			leftover = append(leftover, e.describe())
		}
	}

	c.mu.Unlock()

	if len(leftover) > 0 {
		c.r.Fatalf(
			"unmet expectations: %d call(s) were expected but never made:\n  %s",
			len(leftover), strings.Join(leftover, "\n  "),
		)
	}
}

// call consumes the oldest expectation for the named method, checks the
// actual arguments against it, and returns the registered response.
// An empty queue or an argument mismatch fails the test immediately.
func (c *MockController) call(method string, args []any) []any {
	c.r.Helper()

	c.mu.Lock()

	queue := c.queues[method]
	if len(queue) == 0 {
		c.mu.Unlock()
		c.r.Fatalf(
			"unexpected call to %s(%s): no expectation queued",
			method, renderArgs(args),
		)

		return nil
	}

	expected := queue[0]
	c.queues[method] = queue[1:]
	expected.consumed = true

	c.mu.Unlock()

	if err := matchArgs(expected.args, args); err != nil {
		c.r.Fatalf("call to %s diverged from expectation: %v", method, err)

		return nil
	}

	if expected.panics {
		panic(expected.panicVal)
	}

	return expected.returns
}

// expect appends a new expectation to the named method's queue.
func (c *MockController) expect(method string, args []any) *Expectation {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &Expectation{
		method: method,
		args:   args,
	}

	c.queues[method] = append(c.queues[method], e)
	c.recorded = append(c.recorded, e)

	return e
}

// MockedMethod is the handle for a single method on a mocked interface.
// Generated code creates one per method; tests queue expectations through
// Expect, and the generated implementation reports real calls through Call.
type MockedMethod struct {
	ctrl *MockController
	name string
}

// Call reports a real invocation of the mocked method and returns the
// registered response values. Called by generated mock implementations.
// If the expectation says to panic, Call panics with the registered value.
func (m *MockedMethod) Call(args ...any) []any {
	m.ctrl.r.Helper()

	return m.ctrl.call(m.name, args)
}

// Expect queues an expectation that this method will be called with the
// given arguments. Each expected argument may be a plain value (compared
// with reflect.DeepEqual) or a Matcher (including gomega matchers).
func (m *MockedMethod) Expect(args ...any) *Expectation {
	return m.ctrl.expect(m.name, args)
}

// Name returns the mocked method's name.
func (m *MockedMethod) Name() string {
	return m.name
}

// Pending returns how many queued expectations for this method are still
// unconsumed.
func (m *MockedMethod) Pending() int {
	m.ctrl.mu.Lock()
	defer m.ctrl.mu.Unlock()

	return len(m.ctrl.queues[m.name])
}

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T, *testing.B, and unitest's *T.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// matchArgs checks actual arguments against the expected ones, returning an
// error describing the first divergence.
func matchArgs(expected, actual []any) error {
	if len(actual) != len(expected) {
		//nolint:err113 // validation error with dynamic context
		return fmt.Errorf("expected %d args, got %d", len(expected), len(actual))
	}

	for i, want := range expected {
		ok, failureMsg := MatchValue(actual[i], want)
		if ok {
			continue
		}

		if diff := diffStrings(want, actual[i]); diff != "" {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("arg %d mismatch:\n%s", i, diff)
		}

		//nolint:err113 // validation error with dynamic context
		return fmt.Errorf("arg %d: %s", i, failureMsg)
	}

	return nil
}

// diffStrings renders a unified diff for multiline string mismatches, which
// read far better than two %#v dumps. Returns "" when a diff doesn't apply.
func diffStrings(expected, actual any) string {
	wantStr, wantOK := expected.(string)
	gotStr, gotOK := actual.(string)

	if !wantOK || !gotOK {
		return ""
	}

	if !strings.Contains(wantStr, "\n") && !strings.Contains(gotStr, "\n") {
		return ""
	}

	return textdiff.Unified("expected", "actual", wantStr, gotStr)
}

func renderArgs(args []any) string {
	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = renderValue(a)
	}

	return strings.Join(rendered, ", ")
}

func renderValue(v any) string {
	if m, ok := v.(Matcher); ok {
		return fmt.Sprintf("<matcher %T>", m)
	}

	return fmt.Sprintf("%#v", v)
}
