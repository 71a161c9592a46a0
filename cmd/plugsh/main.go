// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plugsh/plugsh/pkg/config"
	"github.com/plugsh/plugsh/pkg/logger"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "plugsh",
		Short:         "Pre-exec plugin host for interactive shells",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
	}

	root.AddCommand(newListCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newRunCommand())

	return root
}

func setupLogging() {
	hostEnv, err := config.ReadHostEnv()
	if err != nil {
		logger.WarnCF("main", "host environment unreadable", map[string]any{
			"error": err.Error(),
		})
		return
	}
	logger.SetLevel(logger.ParseLevel(hostEnv.LogLevel))
	if hostEnv.LogFile != "" {
		if err := logger.EnableFileLogging(hostEnv.LogFile); err != nil {
			logger.WarnCF("main", "file logging disabled", map[string]any{
				"path":  hostEnv.LogFile,
				"error": err.Error(),
			})
		}
	}
}
