package core

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"runtime/debug"
	"strings"
)

// Config contains options for a whole test run.
type Config struct {
	// Filter is an optional pattern for selecting tests by name. Tests whose
	// names don't match are reported as skipped.
	Filter *regexp.Regexp

	// Logger receives status information about each test. Nil means a
	// ConsoleLogger writing to stdout.
	Logger RunLogger

	// Verbose enables per-test start lines and debug output on the default
	// console logger. Ignored when Logger is set.
	Verbose bool
}

// Case is a single test function registered without a suite.
type Case struct {
	Name string
	Fn   func(*T)
}

// T is the fixture context passed to each test function. It is deliberately
// close to testing.T: assertion helpers written against one usually work
// against the other. Fatalf and FailNow abort only the current test body;
// the runner recovers and moves on to the next test.
type T struct {
	name       string
	logger     RunLogger
	failed     bool
	skipped    bool
	skipReason string
	errors     []error
	cleanups   []func()
}

// Cleanup schedules a function which is guaranteed to run when this test
// ends, for any reason, after TearDown. Cleanups run in LIFO order. Unlike a
// defer statement, Cleanup can be used from within helper functions.
func (t *T) Cleanup(fn func()) {
	t.cleanups = append(t.cleanups, fn)
}

// Debug writes a message to the run output for this test.
func (t *T) Debug(format string, args ...any) {
	t.logger.TestDebug(t.name, fmt.Sprintf(format, args...))
}

// Errorf reports a test failure. It does not terminate the test; it adds the
// failure message to the output and marks the test as failed.
func (t *T) Errorf(format string, args ...any) {
	t.failed = true
	err := fmt.Errorf(format, args...)
	t.errors = append(t.errors, err)
	t.logger.TestError(t.name, err)
}

// FailNow marks the test as failed and terminates it immediately.
func (t *T) FailNow() {
	t.failed = true
	panic(t)
}

// Failed reports whether the test has already recorded a failure.
func (t *T) Failed() bool {
	return t.failed
}

// Fatalf reports a test failure and terminates the test immediately.
func (t *T) Fatalf(format string, args ...any) {
	t.Errorf(format, args...)
	t.FailNow()
}

// Helper is a no-op provided for compatibility with testing.T-style
// reporter interfaces.
func (t *T) Helper() {}

// Name returns the full name of the current test.
func (t *T) Name() string {
	return t.name
}

// Skip terminates the test immediately and marks it as skipped.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

// SkipWithReason is equivalent to Skip but records a message.
func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Run executes every test in the given suites sequentially and returns the
// aggregated results. A suite is either a Case or a pointer to a struct:
// exported methods named Test* with signature func(*T) are discovered by
// reflection, and optional SetUp/TearDown methods run before and after each
// of them. TearDown always runs, whatever the test outcome. Discovered tests
// run in Go's method-set order, which is alphabetical by method name.
func Run(cfg Config, suites ...any) Results {
	env := &environment{
		cfg:    cfg,
		logger: resolveLogger(cfg),
	}

	for _, s := range suites {
		env.runSuite(s)
	}

	return env.results
}

// Main runs the suites, prints the summary, and exits the process: 0 when
// everything passed, 1 otherwise. Intended as the body of a test binary's
// main function.
func Main(cfg Config, suites ...any) {
	logger := resolveLogger(cfg)
	cfg.Logger = logger

	results := Run(cfg, suites...)
	logger.Summary(results)

	if !results.OK() {
		os.Exit(1)
	}

	os.Exit(0)
}

type environment struct {
	cfg     Config
	logger  RunLogger
	results Results
}

func (env *environment) runSuite(suite any) {
	if c, ok := suite.(Case); ok {
		env.runCase(c.Name, nil, nil, c.Fn)

		return
	}

	setUp, tearDown, cases := discover(suite)
	for _, c := range cases {
		env.runCase(c.Name, setUp, tearDown, c.Fn)
	}
}

func (env *environment) runCase(name string, setUp, tearDown, body func(*T)) {
	if env.cfg.Filter != nil && !env.cfg.Filter.MatchString(name) {
		env.logger.TestSkipped(name, "excluded by filter parameters")
		env.results.Tests = append(env.results.Tests, TestResult{
			Name:       name,
			Skipped:    true,
			SkipReason: "excluded by filter parameters",
		})

		return
	}

	t := &T{name: name, logger: env.logger}

	env.logger.TestStarted(name)

	runPhase(t, setUp)

	if !t.failed && !t.skipped {
		runPhase(t, body)
	}

	// Guaranteed-release discipline: TearDown and cleanups run whatever
	// happened in the body.
	runPhase(t, tearDown)

	for i := len(t.cleanups) - 1; i >= 0; i-- {
		cleanup := t.cleanups[i]
		runPhase(t, func(*T) { cleanup() })
	}

	result := TestResult{
		Name:       name,
		Failed:     t.failed,
		Skipped:    t.skipped && !t.failed,
		SkipReason: t.skipReason,
		Errors:     t.errors,
	}

	if result.Skipped {
		env.logger.TestSkipped(name, t.skipReason)
	} else {
		env.logger.TestFinished(name, result)
	}

	env.results.Tests = append(env.results.Tests, result)

	if result.Failed {
		env.results.Failures = append(env.results.Failures, result)
	}
}

// runPhase invokes fn and recovers the FailNow/Skip unwind sentinel. Any
// other panic marks the test failed with the panic value and stack, so a
// panicking test doesn't take down the rest of the run.
func runPhase(t *T, fn func(*T)) {
	if fn == nil {
		return
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if sentinel, ok := r.(*T); ok && sentinel == t {
			return
		}

		t.failed = true
		err := fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())) //nolint:err113
		t.errors = append(t.errors, err)
		t.logger.TestError(t.name, err)
	}()

	fn(t)
}

// discover reflects over a suite struct pointer, collecting Test* methods
// and the optional SetUp/TearDown hooks.
func discover(suite any) (setUp, tearDown func(*T), cases []Case) {
	v := reflect.ValueOf(suite)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("unitest: suite must be a Case or a pointer to a struct, got %T", suite))
	}

	typ := v.Type()
	suiteName := typ.Elem().Name()

	for i := range typ.NumMethod() {
		method := typ.Method(i)

		fn, ok := v.Method(i).Interface().(func(*T))
		if !ok {
			continue
		}

		switch {
		case method.Name == "SetUp":
			setUp = fn
		case method.Name == "TearDown":
			tearDown = fn
		case strings.HasPrefix(method.Name, "Test"):
			cases = append(cases, Case{
				Name: suiteName + "/" + method.Name,
				Fn:   fn,
			})
		}
	}

	return setUp, tearDown, cases
}

func resolveLogger(cfg Config) RunLogger {
	if cfg.Logger != nil {
		return cfg.Logger
	}

	return ConsoleLogger{Verbose: cfg.Verbose}
}
