package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nconsole/logger"
	"github.com/philipp01105/nconsole/transport"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, logger.InfoFilter, cfg.MaxLevel())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "transport: file\npath: /dev/ttyUSB0\nlevel: debug\ncrlf: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, TransportFile, cfg.Transport)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Path)
	assert.Equal(t, logger.DebugFilter, cfg.MaxLevel())
	assert.True(t, cfg.CRLF)
}

func TestLoad_SearchesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".nconsole.yaml", "transport: discard\nlevel: off\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, TransportDiscard, cfg.Transport)
	assert.Equal(t, logger.Off, cfg.MaxLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NCONSOLE_TRANSPORT", "stderr")
	t.Setenv("NCONSOLE_LEVEL", "trace")
	t.Setenv("NCONSOLE_CRLF", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, TransportStderr, cfg.Transport)
	assert.Equal(t, logger.TraceFilter, cfg.MaxLevel())
	assert.True(t, cfg.CRLF)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "bad.yaml", "transport: [\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "kind.yaml", "transport: jtag\n"))
	assert.ErrorIs(t, err, ErrUnknownTransport)

	_, err = Load(writeFile(t, dir, "path.yaml", "transport: file\n"))
	assert.ErrorIs(t, err, ErrMissingPath)

	_, err = Load(writeFile(t, dir, "level.yaml", "level: chatty\n"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg := &Config{Transport: TransportDiscard, Level: "info"}
	tr, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, transport.Discard, tr)

	path := filepath.Join(t.TempDir(), "ttyS0")
	cfg = &Config{Transport: TransportFile, Path: path, Level: "info", CRLF: true}
	tr, err = cfg.Build()
	require.NoError(t, err)
	_, err = tr.Write([]byte("hi\n"))
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\r\n", string(data))

	cfg = &Config{Transport: "jtag"}
	_, err = cfg.Build()
	assert.ErrorIs(t, err, ErrUnknownTransport)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
