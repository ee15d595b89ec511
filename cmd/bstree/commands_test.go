package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestBuild(t *testing.T) {
	out, _, err := run(t, "build", "50", "30", "70", "20", "40")
	require.NoError(t, err)
	require.Equal(t, "in: [20 30 40 50 70]\nsize: 5\nheight: 2\n", out)

	out, _, err = run(t, "build", "--order", "level", "--remove", "30", "50", "30", "70", "20", "40")
	require.NoError(t, err)
	require.Equal(t, "level: [50 40 70 20]\nsize: 4\nheight: 2\n", out)
}

func TestBuild_Duplicates(t *testing.T) {
	out, errOut, err := run(t, "build", "1", "1", "2")
	require.NoError(t, err)
	require.Contains(t, out, "size: 2")
	require.Contains(t, errOut, "skipping duplicate 1")
}

func TestBuild_Errors(t *testing.T) {
	_, _, err := run(t, "build", "x")
	require.Error(t, err)
	_, _, err = run(t, "build", "--order", "sideways", "1")
	require.ErrorContains(t, err, "unknown order")
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.snap")
	_, errOut, err := run(t, "build", "--out", path, "8", "4", "12", "2", "6")
	require.NoError(t, err)
	require.Contains(t, errOut, "wrote snapshot of 5 elements")

	out, _, err := run(t, "show", "--order", "pre", path)
	require.NoError(t, err)
	require.Equal(t, "pre: [8 4 2 6 12]\nsize: 5\nheight: 2\n", out)

	_, _, err = run(t, "show", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
