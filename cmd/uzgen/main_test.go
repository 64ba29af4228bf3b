package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/uz/internal/gen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "uzgen.yaml")
	cfg := "package: demo\nbits:\n  max: 10\n  enum_max: 2\nranges:\n  max: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "uzgen", cmd.Use)

	for _, name := range []string{"config", "out", "check", "dry-run", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
	assert.Equal(t, "o", cmd.Flags().Lookup("out").Shorthand)
}

func TestRun_WriteThenCheck(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	out := filepath.Join(dir, "out")

	_, err := execute(t, "--config", cfg, "--out", out)
	require.NoError(t, err)
	for _, name := range []string{gen.FileBitsEnum, gen.FileBitsWord, gen.FileRanges, gen.FileRegistry} {
		assert.FileExists(t, filepath.Join(out, name))
	}

	src, err := os.ReadFile(filepath.Join(out, gen.FileBitsEnum))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package demo")

	stdout, err := execute(t, "--config", cfg, "--out", out, "--check")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRun_CheckStale(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	stdout, err := execute(t, "--config", cfg, "--out", dir, "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")
	assert.Contains(t, stdout, "stale: "+gen.FileRegistry)
}

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "never")

	stdout, err := execute(t, "--out", out, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, gen.FileRanges)
	assert.Contains(t, stdout, "bytes")
	assert.NoDirExists(t, out)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bits:\n  max: 99\n"), 0o644))
	_, err = execute(t, "--config", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bits.max")

	_, err = execute(t, "--check", "--dry-run")
	require.Error(t, err)

	_, err = execute(t, "extra")
	require.Error(t, err)
}
