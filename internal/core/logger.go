package core

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var consoleErrorColor = color.New(color.FgYellow)               //nolint:gochecknoglobals
var consoleFailedColor = color.New(color.FgRed)                 //nolint:gochecknoglobals
var consoleSkippedColor = color.New(color.Faint, color.FgBlue)  //nolint:gochecknoglobals
var consolePassedColor = color.New(color.FgGreen)               //nolint:gochecknoglobals
var consoleDebugColor = color.New(color.Faint)                  //nolint:gochecknoglobals

// RunLogger receives status information about each test as the run proceeds.
type RunLogger interface {
	TestStarted(name string)
	TestDebug(name string, message string)
	TestError(name string, err error)
	TestFinished(name string, result TestResult)
	TestSkipped(name string, reason string)
	Summary(results Results)
}

// NullLogger returns a RunLogger that discards everything. Useful when
// embedding a run inside another program that reports results itself.
func NullLogger() RunLogger {
	return nullRunLogger{}
}

type nullRunLogger struct{}

func (nullRunLogger) TestStarted(string)              {}
func (nullRunLogger) TestDebug(string, string)        {}
func (nullRunLogger) TestError(string, error)         {}
func (nullRunLogger) TestFinished(string, TestResult) {}
func (nullRunLogger) TestSkipped(string, string)      {}
func (nullRunLogger) Summary(Results)                 {}

// ConsoleLogger prints per-test PASS/FAIL/SKIP lines and a final summary to
// standard output, colorized when the terminal supports it.
type ConsoleLogger struct {
	// Verbose enables TestDebug output and per-test start lines.
	Verbose bool

	// Out overrides the destination; nil means os.Stdout.
	Out io.Writer
}

func (c ConsoleLogger) TestStarted(name string) {
	if c.Verbose {
		fmt.Fprintf(c.out(), "[%s]\n", name)
	}
}

func (c ConsoleLogger) TestDebug(name string, message string) {
	if c.Verbose {
		_, _ = consoleDebugColor.Fprintf(c.out(), "    DEBUG [%s] %s\n", name, message)
	}
}

func (c ConsoleLogger) TestError(name string, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = consoleErrorColor.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c ConsoleLogger) TestFinished(name string, result TestResult) {
	if result.Failed {
		_, _ = consoleFailedColor.Fprintf(c.out(), "FAIL: %s\n", name)
	} else {
		_, _ = consolePassedColor.Fprintf(c.out(), "PASS: %s\n", name)
	}
}

func (c ConsoleLogger) TestSkipped(name string, reason string) {
	if reason == "" {
		_, _ = consoleSkippedColor.Fprintf(c.out(), "SKIP: %s\n", name)
	} else {
		_, _ = consoleSkippedColor.Fprintf(c.out(), "SKIP: %s (%s)\n", name, reason)
	}
}

func (c ConsoleLogger) Summary(results Results) {
	if results.OK() {
		_, _ = consolePassedColor.Fprintf(c.out(), "All tests passed (%d passed, %d skipped)\n",
			results.PassedCount(), results.SkippedCount())

		return
	}

	_, _ = consoleFailedColor.Fprintf(c.out(), "FAILED TESTS (%d):\n", results.FailedCount())

	for _, f := range results.Failures {
		_, _ = consoleFailedColor.Fprintf(c.out(), "  * %s\n", f.Name)
	}

	fmt.Fprintf(c.out(), "%d passed, %d failed, %d skipped\n",
		results.PassedCount(), results.FailedCount(), results.SkippedCount())
}

func (c ConsoleLogger) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}

	return os.Stdout
}

// MultiLogger fans run events out to several loggers.
type MultiLogger struct {
	Loggers []RunLogger
}

func (m MultiLogger) TestStarted(name string) {
	for _, l := range m.Loggers {
		l.TestStarted(name)
	}
}

func (m MultiLogger) TestDebug(name string, message string) {
	for _, l := range m.Loggers {
		l.TestDebug(name, message)
	}
}

func (m MultiLogger) TestError(name string, err error) {
	for _, l := range m.Loggers {
		l.TestError(name, err)
	}
}

func (m MultiLogger) TestFinished(name string, result TestResult) {
	for _, l := range m.Loggers {
		l.TestFinished(name, result)
	}
}

func (m MultiLogger) TestSkipped(name string, reason string) {
	for _, l := range m.Loggers {
		l.TestSkipped(name, reason)
	}
}

func (m MultiLogger) Summary(results Results) {
	for _, l := range m.Loggers {
		l.Summary(results)
	}
}

// JUnitLogger collects results and writes a JUnit XML report when the run's
// summary is emitted. CI systems consume this format directly.
type JUnitLogger struct {
	path  string
	start time.Time
}

// NewJUnitLogger creates a logger that writes a JUnit XML file to path at the
// end of the run.
func NewJUnitLogger(path string) *JUnitLogger {
	return &JUnitLogger{path: path, start: time.Now()}
}

func (j *JUnitLogger) TestStarted(string)              {}
func (j *JUnitLogger) TestDebug(string, string)        {}
func (j *JUnitLogger) TestError(string, error)         {}
func (j *JUnitLogger) TestFinished(string, TestResult) {}
func (j *JUnitLogger) TestSkipped(string, string)      {}

func (j *JUnitLogger) Summary(results Results) {
	report := junitTestSuite{
		Name:     "unitest",
		Tests:    len(results.Tests),
		Failures: results.FailedCount(),
		Skipped:  results.SkippedCount(),
		Time:     time.Since(j.start).Seconds(),
	}

	for _, tr := range results.Tests {
		tc := junitTestCase{Name: tr.Name}

		if tr.Skipped {
			tc.SkipMessage = &junitSkipMessage{Message: tr.SkipReason}
		}

		for _, err := range tr.Errors {
			tc.Failures = append(tc.Failures, junitFailure{
				Message: err.Error(),
			})
		}

		report.TestCases = append(report.TestCases, tc)
	}

	data, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JUnit report: %v\n", err)

		return
	}

	data = append([]byte(xml.Header), data...)

	if err := os.WriteFile(j.path, data, 0o644); err != nil { //nolint:gosec // report file
		fmt.Fprintf(os.Stderr, "failed to write JUnit report to %s: %v\n", j.path, err)
	}
}

type junitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name        string            `xml:"name,attr"`
	Failures    []junitFailure    `xml:"failure,omitempty"`
	SkipMessage *junitSkipMessage `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
}

type junitSkipMessage struct {
	Message string `xml:"message,attr"`
}
