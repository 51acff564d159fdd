package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/catcher/pkg/exc"
)

// resetFlags restores the package-level flag variables to their declared
// defaults so values from one test's args cannot leak into the next.
func resetFlags() {
	verbosity = 0
	cfgFile = ""
	raiseType = exc.Root
	raiseMessage = "test exception"
	raiseCode = 0
	raiseFile = ""
	raiseLine = 0
	raiseSeverity = ""
}

// runCommand executes the root command with the given args and returns its
// combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catcher.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testConfig = `
reporting = ["error"]

[[types]]
name = "IOError"
parent = ""

[[types]]
name = "FileMissing"
parent = "IOError"
`

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "catcher version")
}

func TestConfigDefaultCommand(t *testing.T) {
	out, err := runCommand(t, "config-default")

	require.NoError(t, err)
	assert.Contains(t, out, "default_handler = true")
}

func TestCheckCommand(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := runCommand(t, "check", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Configuration OK")
	assert.Contains(t, out, "FileMissing < IOError < Exception")
}

func TestCheckCommandInvalidConfig(t *testing.T) {
	path := writeConfig(t, `reporting = ["fatal"]`)

	_, err := runCommand(t, "check", "--config", path)

	assert.Error(t, err)
}

func TestRaiseCommand(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := runCommand(t, "raise", "--config", path,
		"--type", "FileMissing", "--message", "no such file",
		"--file", "io.x", "--line", "42")

	require.NoError(t, err)
	assert.Contains(t, out, `Uncaught exception FileMissing: "no such file" [File io.x | Line 42]`)
}

func TestRaiseCommandFilteredSeverity(t *testing.T) {
	path := writeConfig(t, testConfig)

	// The config masks only errors; a notice must be dropped silently.
	out, err := runCommand(t, "raise", "--config", path,
		"--severity", "notice", "--message", "minor detail")

	require.NoError(t, err)
	assert.NotContains(t, out, "Uncaught exception")
}

func TestFlagValuesDoNotLeakBetweenRuns(t *testing.T) {
	path := writeConfig(t, testConfig)

	// First run takes the raw-error path via --severity.
	out, err := runCommand(t, "raise", "--config", path,
		"--severity", "notice", "--message", "minor detail")
	require.NoError(t, err)
	assert.NotContains(t, out, "Uncaught exception")

	// Without --severity the next run must raise a typed exception again;
	// a leaked severity value would silently drop it.
	out, err = runCommand(t, "raise", "--config", path,
		"--type", "IOError", "--message", "read failed")
	require.NoError(t, err)
	assert.Contains(t, out, `Uncaught exception IOError: "read failed"`)
}
