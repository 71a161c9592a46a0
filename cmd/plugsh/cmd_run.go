// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/plugsh/plugsh/pkg/config"
	"github.com/plugsh/plugsh/pkg/plugin"
	"github.com/plugsh/plugsh/pkg/plugin/native"
)

func newRunCommand() *cobra.Command {
	var configPath string
	var caller string

	cmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a command after the plugin hook chain consents",
		Long: `Loads the configured plugins, dispatches the pre-exec hook chain for the
given command, and replaces this process with the command if every plugin
consents. A plugin veto aborts the command and becomes the exit status.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolveConfigPath(configPath)

			mgr := plugin.NewManager(native.Open)
			if err := mgr.LoadAll(path); err != nil {
				return fmt.Errorf("error loading plugins: %w", err)
			}

			status := mgr.Dispatch(resolveCaller(caller), args[0], args)

			// The process is about to be replaced (or to exit), so the
			// registry is torn down before either path.
			if err := mgr.UnloadAll(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "teardown diagnostics: %v\n", err)
			}

			if status != 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "plugsh: %s vetoed by plugin (status %d)\n", args[0], status)
				os.Exit(int(status))
			}

			binary, err := exec.LookPath(args[0])
			if err != nil {
				return fmt.Errorf("command not found: %w", err)
			}
			return unix.Exec(binary, args, os.Environ())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to plugin config file")
	cmd.Flags().StringVar(&caller, "user", "", "Caller identity passed to hooks (default: $USER, then uid)")

	return cmd
}

// resolveCaller picks the identity handed to on_shell_execve: the explicit
// flag, then the host environment's USER, then the numeric uid.
func resolveCaller(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if hostEnv, err := config.ReadHostEnv(); err == nil && hostEnv.User != "" {
		return hostEnv.User
	}
	return fmt.Sprintf("uid:%d", os.Getuid())
}
