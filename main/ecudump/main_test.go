package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const engineDump = `=== CRDT State Dump ===
Engine ECU:
  Temperature: 0x42280000
  Error Count: 0x3E8
  Config Time: 0x0
  CAN Buffer: 0x1
=== End CRDT State Dump ===
`

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func tempFile(t *testing.T, name, content string) string {
	dir, err := ioutil.TempDir("", "ecudump")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	fileName := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0644))
	return fileName
}

func TestRunStdin(t *testing.T) {
	code, stdout, stderr := runWith(t, engineDump)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "  Temperature:     42.00°C (107.60°F) [0x42280000]\n")
	assert.Contains(t, stdout, "  Error Count:    1,000 [0x3E8]\n")
	assert.True(t, strings.HasSuffix(stdout, "✅ NORMAL: No emergency conditions detected\n"))
}

func TestRunFile(t *testing.T) {
	fileName := tempFile(t, "dump.txt", engineDump)
	code, fromFile, _ := runWith(t, "", fileName)
	assert.Equal(t, exitOK, code)

	_, fromStdin, _ := runWith(t, engineDump)
	assert.Equal(t, fromStdin, fromFile)
}

func TestRunNoSection(t *testing.T) {
	code, stdout, stderr := runWith(t, "nothing to see here\n")
	assert.Equal(t, exitNoData, code)
	assert.Equal(t, "No CRDT state data found in input\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunMissingFile(t *testing.T) {
	code, stdout, stderr := runWith(t, "", "/nonexistent/dump.txt")
	assert.Equal(t, exitNoData, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: File '/nonexistent/dump.txt' not found\n", stderr)
}

func TestRunEmptySection(t *testing.T) {
	code, stdout, _ := runWith(t, "=== CRDT State Dump ===\n=== End CRDT State Dump ===\n")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "SYSTEM ANALYSIS")
}

func TestRunConfig(t *testing.T) {
	configFile := tempFile(t, "thresholds.toml", "WarningTemperature = 40.0\nCriticalTemperature = 41.0\n")
	code, stdout, _ := runWith(t, engineDump, "-config", configFile)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "⚠️  WARNING: High temperature detected!\n🚨 CRITICAL: Overheating condition!\n")
}

func TestRunBadConfig(t *testing.T) {
	configFile := tempFile(t, "thresholds.toml", "WarningTemperature = 50.0\nCriticalTemperature = 41.0\n")
	code, stdout, stderr := runWith(t, engineDump, "-config", configFile)
	assert.Equal(t, exitConfig, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unable to load configuration")

	code, _, _ = runWith(t, engineDump, "-config", "/nonexistent/thresholds.toml")
	assert.Equal(t, exitConfig, code)

	code, _, _ = runWith(t, engineDump, "-bogus")
	assert.Equal(t, exitConfig, code)
}

func TestRunDebug(t *testing.T) {
	code, _, stderr := runWith(t, engineDump, "-debug")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "unit record matched")
	assert.Contains(t, stderr, "unit record absent")
}

func TestRunDecodeWarning(t *testing.T) {
	dump := `=== CRDT State Dump ===
Steering ECU: Temperature: 0x1FFFFFFFF Error Count: 0x0 CAN Buffer: 0x0
=== End CRDT State Dump ===`

	code, stdout, stderr := runWith(t, dump)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "N/A [0x1FFFFFFFF]")
	assert.Empty(t, stderr, "decode failures are only logged with -debug")

	code, debugStdout, stderr := runWith(t, dump, "-debug")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, stdout, debugStdout)
	assert.Contains(t, stderr, "unable to decode field")
}
