package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugsh/plugsh/pkg/plugin"
)

func TestNewCheckCommand(t *testing.T) {
	cmd := newCheckCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "check", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	require.NotNil(t, cmd.Flags().Lookup("config"))
}

func TestRenderCheckReport_AlignsLoadedSubsequence(t *testing.T) {
	entries := []configuredPlugin{
		{Position: 1, Path: "/mod/a.so"},
		{Position: 2, Path: "/mod/partial.so"},
		{Position: 3, Path: "/mod/c.so"},
	}
	loaded := []plugin.ModuleInfo{
		{ID: "id-a", Path: "/mod/a.so"},
		{ID: "id-c", Path: "/mod/c.so"},
	}

	var out bytes.Buffer
	renderCheckReport(&out, entries, loaded)

	want := "POSITION\tSTATUS\tPATH\tID\n" +
		"1\tloaded\t/mod/a.so\tid-a\n" +
		"2\tfailed\t/mod/partial.so\t-\n" +
		"3\tloaded\t/mod/c.so\tid-c\n" +
		"loaded 2 of 3 configured plugins\n"
	assert.Equal(t, want, out.String())
}

func TestRenderCheckReport_DuplicatePathsMatchInOrder(t *testing.T) {
	entries := []configuredPlugin{
		{Position: 1, Path: "/mod/a.so"},
		{Position: 2, Path: "/mod/a.so"},
	}
	loaded := []plugin.ModuleInfo{
		{ID: "first", Path: "/mod/a.so"},
		{ID: "second", Path: "/mod/a.so"},
	}

	var out bytes.Buffer
	renderCheckReport(&out, entries, loaded)

	assert.Contains(t, out.String(), "1\tloaded\t/mod/a.so\tfirst\n")
	assert.Contains(t, out.String(), "2\tloaded\t/mod/a.so\tsecond\n")
}
