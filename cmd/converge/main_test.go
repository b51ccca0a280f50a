package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_defaults(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 118)
	assert.Equal(t, "2 2 3 9", lines[0])
}

func TestRoot_flags(t *testing.T) {
	out, stderr, err := execute(t, "--arity", "3", "--target", "3", "--stats", "--human=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 37)
	assert.Equal(t, "0 0 9", lines[0])
	assert.Contains(t, stderr, "counter/matches")
}

func TestRoot_configFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arity: 3\ntarget: 3\n"), 0o644))

	out, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 37)

	// Flags win over the file.
	out, _, err = execute(t, "--config", path, "--arity", "2", "--target", "1", "--max", "3", "--attempts", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 1\n", out)
}

func TestRoot_invalid(t *testing.T) {
	_, _, err := execute(t, "--arity", "0")
	assert.Error(t, err)

	_, _, err = execute(t, "extra")
	assert.Error(t, err)

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "converge version: unknown\n", out)
}
