package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConsoleTree(t *testing.T) {
	out, err := execute(t, "2", "1", "3")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
	require.Contains(t, out, "|------+ 2 +0")
	require.NotContains(t, out, "\x1b[")
}

func TestDotOutputWithErase(t *testing.T) {
	out, err := execute(t, "--dot", "--erase", "3,4", "1", "2", "3", "4")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "strict digraph {"))
	require.Equal(t, 2, strings.Count(out, "->"), "one real edge, one to the missing child")
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, "one")
	require.Error(t, err)
	_, err = execute(t, "--erase", "9", "1")
	require.ErrorIs(t, err, containers.ErrKeyNotFound)
}
