package core_test

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toejough/unitest"
)

const mainScenarioEnv = "UNITEST_MAIN_SCENARIO"

// TestMainExitCode verifies Main's process exit codes: 0 when every test
// passes, 1 when any test fails. Main calls os.Exit, so the scenarios run in
// re-executed copies of this test binary and the parent asserts on their
// exit codes.
func TestMainExitCode(t *testing.T) {
	if scenario := os.Getenv(mainScenarioEnv); scenario != "" {
		runMainScenario(scenario)

		return
	}

	scenarios := []struct {
		name     string
		wantCode int
	}{
		{name: "pass", wantCode: 0},
		{name: "fail", wantCode: 1},
	}

	for _, scenario := range scenarios {
		cmd := exec.Command(os.Args[0], "-test.run=TestMainExitCode$")
		cmd.Env = append(os.Environ(), mainScenarioEnv+"="+scenario.name)

		err := cmd.Run()

		exitCode := 0

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			require.NoError(t, err, "scenario %s", scenario.name)
		}

		assert.Equal(t, scenario.wantCode, exitCode, "scenario %s", scenario.name)
	}
}

// runMainScenario is the re-executed half of TestMainExitCode: it hands
// control to Main, which exits the process.
func runMainScenario(scenario string) {
	cfg := unitest.Config{Logger: unitest.NullLogger()}

	unitest.Main(cfg, unitest.Case{
		Name: "scenario",
		Fn: func(t *unitest.T) {
			if scenario == "fail" {
				t.Errorf("deliberate failure")
			}
		},
	})
}
