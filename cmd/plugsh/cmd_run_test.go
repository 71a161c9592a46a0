package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunCommand(t *testing.T) {
	cmd := newRunCommand()

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.RunE)
	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("user"))
}

func TestResolveCallerPrecedence(t *testing.T) {
	t.Setenv("USER", "alice")

	assert.Equal(t, "bob", resolveCaller("bob"), "explicit flag wins")
	assert.Equal(t, "alice", resolveCaller(""), "USER is the fallback")

	t.Setenv("USER", "")
	os.Unsetenv("USER")
	assert.Equal(t, fmt.Sprintf("uid:%d", os.Getuid()), resolveCaller(""))
}
