package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with a config that sends console output to a file
// and returns that file's content.
func run(t *testing.T, stdin string, args ...string) (out, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	outPath := filepath.Join(dir, "ttyS0")
	cfgPath := filepath.Join(dir, "nconsole.yaml")
	cfg := "transport: file\npath: " + outPath + "\nlevel: trace\ncrlf: true\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	var errBuf bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetErr(&errBuf)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err = root.Execute()

	data, readErr := os.ReadFile(outPath)
	if readErr != nil && !os.IsNotExist(readErr) {
		t.Fatalf("ReadFile() error = %v", readErr)
	}
	return string(data), errBuf.String(), err
}

func TestPipe_Plain(t *testing.T) {
	out, stderr, err := run(t, "first\nsecond\r\n\n", "pipe", "--stats")
	require.NoError(t, err)
	assert.Equal(t, "first\r\nsecond\r\n\r\n", out)
	assert.Contains(t, stderr, "dispatched=")
}

func TestPipe_Prefix(t *testing.T) {
	out, _, err := run(t, "fifo full\n", "pipe", "--mode", "prefix", "--level", "warn", "--module", "uart")
	require.NoError(t, err)
	assert.Equal(t, "W: uart - fifo full\r\n", out)

	out, _, err = run(t, "chatty\n", "pipe", "--mode", "prefix", "--level", "trace")
	require.NoError(t, err)
	assert.Equal(t, "I: stdin - chatty\r\n", out)
}

// The facade accepts one registration per process, so log mode is
// exercised once.
func TestPipe_Log(t *testing.T) {
	out, _, err := run(t, "booting\nready\n", "pipe", "--mode", "log", "--level", "warn")
	require.NoError(t, err)
	assert.Equal(t, "WARN - stdin:1 - booting\r\nWARN - stdin:2 - ready\r\n", out)

	_, _, err = run(t, "again\n", "pipe", "--mode", "log")
	assert.Error(t, err)
}

func TestPipe_InvalidFlags(t *testing.T) {
	_, _, err := run(t, "", "pipe", "--mode", "jtag")
	assert.ErrorContains(t, err, "unknown --mode")

	_, _, err = run(t, "", "pipe", "--level", "loud")
	assert.ErrorContains(t, err, "--level")
}

func TestLevels(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"levels"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "E ERROR\nW WARN\nI INFO\nD DEBUG\nT TRACE\n", out.String())
}
