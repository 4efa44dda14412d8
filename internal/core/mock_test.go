package core_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/toejough/unitest"
	"github.com/toejough/unitest/match"
)

// mockTester is a hand-rolled Reporter for observing failure reports without
// failing the real test.
type mockTester struct {
	helper   func()
	fatalf   func(format string, args ...any)
	cleanups []func()
}

func (mt *mockTester) Helper() {
	if mt.helper != nil {
		mt.helper()
	}
}

func (mt *mockTester) Fatalf(format string, args ...any) {
	mt.fatalf(format, args...)
}

func (mt *mockTester) Cleanup(fn func()) {
	mt.cleanups = append(mt.cleanups, fn)
}

// quietTester returns a Reporter that fails the enclosing test if the code
// under test reports a failure.
func quietTester(t *testing.T) *mockTester {
	t.Helper()

	return &mockTester{
		fatalf: func(format string, args ...any) {
			t.Errorf("unexpected failure report: "+format, args...)
		},
	}
}

// failureRecorder returns a Reporter that records failure messages.
func failureRecorder() (*mockTester, *[]string) {
	var messages []string

	mt := &mockTester{
		fatalf: func(format string, args ...any) {
			messages = append(messages, fmt.Sprintf(format, args...))
		},
	}

	return mt, &messages
}

// TestCall_ReturnsRegisteredValues verifies the basic expect/call round trip.
func TestCall_ReturnsRegisteredValues(t *testing.T) {
	t.Parallel()

	ctrl := unitest.NewMockController(quietTester(t))
	method := ctrl.Method("Add")

	method.Expect(1, 2).AndReturn(3)

	results := method.Call(1, 2)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if got, ok := results[0].(int); !ok || got != 3 {
		t.Errorf("expected 3, got %v", results[0])
	}
}

// TestCall_ConsumesOldestExpectationFirst verifies FIFO queue discipline.
func TestCall_ConsumesOldestExpectationFirst(t *testing.T) {
	t.Parallel()

	ctrl := unitest.NewMockController(quietTester(t))
	method := ctrl.Method("Get")

	method.Expect(1).AndReturn("first")
	method.Expect(2).AndReturn("second")

	if got := method.Call(1)[0]; got != "first" {
		t.Errorf("expected \"first\", got %v", got)
	}

	if got := method.Call(2)[0]; got != "second" {
		t.Errorf("expected \"second\", got %v", got)
	}

	if pending := method.Pending(); pending != 0 {
		t.Errorf("expected no pending expectations, got %d", pending)
	}
}

// TestCall_EmptyQueueFailsImmediately verifies that an unexpected call fails
// the test rather than silently returning.
func TestCall_EmptyQueueFailsImmediately(t *testing.T) {
	t.Parallel()

	mt, messages := failureRecorder()
	ctrl := unitest.NewMockController(mt)

	ctrl.Method("Malloc").Call(10)

	if len(*messages) != 1 {
		t.Fatalf("expected 1 failure report, got %d", len(*messages))
	}

	if !strings.Contains((*messages)[0], "unexpected call to Malloc") {
		t.Errorf("failure message %q should name the unexpected call", (*messages)[0])
	}
}

// TestCall_ArgumentMismatchFailsImmediately covers the scenario of expecting
// Malloc(10) and calling Malloc(20).
func TestCall_ArgumentMismatchFailsImmediately(t *testing.T) {
	t.Parallel()

	mt, messages := failureRecorder()
	ctrl := unitest.NewMockController(mt)
	method := ctrl.Method("Malloc")

	method.Expect(10).AndReturn(nil)
	method.Call(20)

	if len(*messages) != 1 {
		t.Fatalf("expected 1 failure report, got %d", len(*messages))
	}

	if !strings.Contains((*messages)[0], "diverged") {
		t.Errorf("failure message %q should report the divergence", (*messages)[0])
	}
}

// TestCall_WrongArgumentCountFails verifies arity mismatches are reported.
func TestCall_WrongArgumentCountFails(t *testing.T) {
	t.Parallel()

	mt, messages := failureRecorder()
	ctrl := unitest.NewMockController(mt)
	method := ctrl.Method("Store")

	method.Expect("key", "value").AndReturn(nil)
	method.Call("key")

	if len(*messages) != 1 {
		t.Fatalf("expected 1 failure report, got %d", len(*messages))
	}

	if !strings.Contains((*messages)[0], "expected 2 args, got 1") {
		t.Errorf("failure message %q should report the arity mismatch", (*messages)[0])
	}
}

// TestCall_MatcherArguments verifies matchers work in expected positions.
func TestCall_MatcherArguments(t *testing.T) {
	t.Parallel()

	ctrl := unitest.NewMockController(quietTester(t))
	method := ctrl.Method("Log")

	method.Expect(match.BeAny, match.Satisfy(func(level int) error {
		if level < 0 {
			return fmt.Errorf("expected non-negative level, got %d", level)
		}

		return nil
	}))

	method.Call("whatever message", 2)
}

// TestCall_PanicInjection verifies AndPanic makes the mocked call panic.
func TestCall_PanicInjection(t *testing.T) {
	t.Parallel()

	ctrl := unitest.NewMockController(quietTester(t))
	method := ctrl.Method("Close")

	method.Expect().AndPanic("boom")

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected panic with \"boom\", got %v", r)
		}
	}()

	method.Call()
}

// TestVerify_FlagsUnconsumedExpectations covers the scenario of registering
// an expectation and never making the matching call.
func TestVerify_FlagsUnconsumedExpectations(t *testing.T) {
	t.Parallel()

	mt, messages := failureRecorder()
	ctrl := unitest.NewMockController(mt)

	ctrl.Method("Malloc").Expect(10).AndReturn(nil)
	ctrl.Verify()

	if len(*messages) != 1 {
		t.Fatalf("expected 1 failure report, got %d", len(*messages))
	}

	if !strings.Contains((*messages)[0], "unmet expectations") ||
		!strings.Contains((*messages)[0], "Malloc(10)") {
		t.Errorf("failure message %q should list the unmet Malloc expectation", (*messages)[0])
	}
}

// TestVerify_PassesWhenAllConsumed verifies a drained queue is clean.
func TestVerify_PassesWhenAllConsumed(t *testing.T) {
	t.Parallel()

	ctrl := unitest.NewMockController(quietTester(t))
	method := ctrl.Method("Get")

	method.Expect(1).AndReturn("data")
	method.Call(1)

	ctrl.Verify()
}

// TestVerify_RunsAutomaticallyViaCleanup verifies the controller hooks
// verification into the reporter's cleanup phase.
func TestVerify_RunsAutomaticallyViaCleanup(t *testing.T) {
	t.Parallel()

	mt, messages := failureRecorder()
	ctrl := unitest.NewMockController(mt)

	ctrl.Method("Save").Expect(1, "data").AndReturn(nil)

	if len(mt.cleanups) == 0 {
		t.Fatal("expected the controller to register a cleanup")
	}

	for _, cleanup := range mt.cleanups {
		cleanup()
	}

	if len(*messages) != 1 {
		t.Fatalf("expected 1 failure report from cleanup, got %d", len(*messages))
	}
}

// TestCall_MultilineStringMismatchRendersDiff verifies the diff output path.
func TestCall_MultilineStringMismatchRendersDiff(t *testing.T) {
	t.Parallel()

	mt, messages := failureRecorder()
	ctrl := unitest.NewMockController(mt)
	method := ctrl.Method("Write")

	method.Expect("line one\nline two\n").AndReturn(nil)
	method.Call("line one\nline 2\n")

	if len(*messages) != 1 {
		t.Fatalf("expected 1 failure report, got %d", len(*messages))
	}

	if !strings.Contains((*messages)[0], "-line two") {
		t.Errorf("failure message should include a unified diff, got:\n%s", (*messages)[0])
	}
}
