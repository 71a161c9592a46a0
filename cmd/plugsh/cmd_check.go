// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/plugsh/plugsh/pkg/config"
	"github.com/plugsh/plugsh/pkg/plugin"
	"github.com/plugsh/plugsh/pkg/plugin/native"
)

func newCheckCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load every configured plugin, report, and unload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ResolveConfigPath(configPath)

			entries, err := readConfiguredPlugins(path)
			if err != nil {
				return fmt.Errorf("error reading plugin config: %w", err)
			}

			mgr := plugin.NewManager(native.Open)
			if err := mgr.LoadAll(path); err != nil {
				return fmt.Errorf("error loading plugins: %w", err)
			}
			loaded := mgr.Snapshot()

			renderCheckReport(cmd.OutOrStdout(), entries, loaded)

			if err := mgr.UnloadAll(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "teardown diagnostics: %v\n", err)
			}

			if failed := len(entries) - len(loaded); failed > 0 {
				return fmt.Errorf("%d of %d configured plugins failed to load", failed, len(entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to plugin config file")

	return cmd
}

// renderCheckReport marks each configured entry loaded or failed. Loaded
// modules are a subsequence of the configured list (skips preserve relative
// order), so one forward pass lines the two up.
func renderCheckReport(w io.Writer, entries []configuredPlugin, loaded []plugin.ModuleInfo) {
	fmt.Fprintln(w, "POSITION\tSTATUS\tPATH\tID")
	next := 0
	for _, entry := range entries {
		if next < len(loaded) && loaded[next].Path == entry.Path {
			fmt.Fprintf(w, "%d\tloaded\t%s\t%s\n", entry.Position, entry.Path, loaded[next].ID)
			next++
			continue
		}
		fmt.Fprintf(w, "%d\tfailed\t%s\t-\n", entry.Position, entry.Path)
	}
	fmt.Fprintf(w, "loaded %d of %d configured plugins\n", len(loaded), len(entries))
}
