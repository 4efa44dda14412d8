package core_test

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toejough/unitest"
)

func TestConsoleLoggerPrintsPerTestLinesAndSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := unitest.Config{Logger: unitest.ConsoleLogger{Out: &buf}}

	unitest.Run(cfg,
		unitest.Case{Name: "good", Fn: func(*unitest.T) {}},
		unitest.Case{Name: "bad", Fn: func(t *unitest.T) { t.Errorf("broken") }},
		unitest.Case{Name: "meh", Fn: func(t *unitest.T) { t.SkipWithReason("later") }},
	)

	out := buf.String()
	assert.Contains(t, out, "PASS: good")
	assert.Contains(t, out, "FAIL: bad")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "SKIP: meh (later)")
}

func TestConsoleLoggerSummaryListsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := unitest.ConsoleLogger{Out: &buf}

	cfg := unitest.Config{Logger: logger}
	results := unitest.Run(cfg,
		unitest.Case{Name: "bad", Fn: func(t *unitest.T) { t.Errorf("broken") }},
	)

	logger.Summary(results)

	out := buf.String()
	assert.Contains(t, out, "FAILED TESTS (1)")
	assert.Contains(t, out, "* bad")
	assert.Contains(t, out, "0 passed, 1 failed, 0 skipped")
}

func TestJUnitLoggerWritesReportFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.xml")
	logger := unitest.NewJUnitLogger(path)

	cfg := unitest.Config{Logger: unitest.MultiLogger{
		Loggers: []unitest.RunLogger{unitest.NullLogger(), logger},
	}}

	results := unitest.Run(cfg,
		unitest.Case{Name: "good", Fn: func(*unitest.T) {}},
		unitest.Case{Name: "bad", Fn: func(t *unitest.T) { t.Errorf("broken") }},
	)

	logger.Summary(results)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		XMLName  xml.Name `xml:"testsuite"`
		Tests    int      `xml:"tests,attr"`
		Failures int      `xml:"failures,attr"`
		Cases    []struct {
			Name string `xml:"name,attr"`
		} `xml:"testcase"`
	}

	require.NoError(t, xml.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Tests)
	assert.Equal(t, 1, report.Failures)
	require.Len(t, report.Cases, 2)
	assert.Equal(t, "good", report.Cases[0].Name)
}
