// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/plugsh/plugsh/pkg/config"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type configuredPlugin struct {
	Position int    `json:"position"`
	Path     string `json:"path"`
}

func newListCommand() *cobra.Command {
	var format string
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plugins named in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("invalid value for --format: %q (allowed: %s, %s)", format, formatText, formatJSON)
			}

			entries, err := readConfiguredPlugins(config.ResolveConfigPath(configPath))
			if err != nil {
				return fmt.Errorf("error reading plugin config: %w", err)
			}

			return renderConfiguredPlugins(cmd.OutOrStdout(), format, entries)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text|json)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to plugin config file")

	return cmd
}

// readConfiguredPlugins collects the config file's plugin paths in file
// order. Duplicates stay; the registry would load them twice too.
func readConfiguredPlugins(path string) ([]configuredPlugin, error) {
	src := config.NewSource(path)
	var entries []configuredPlugin
	err := src.Each(func(pluginPath string) bool {
		entries = append(entries, configuredPlugin{
			Position: len(entries) + 1,
			Path:     pluginPath,
		})
		return true
	})
	return entries, err
}

func renderConfiguredPlugins(w io.Writer, format string, entries []configuredPlugin) error {
	switch format {
	case formatText:
		if _, err := fmt.Fprintln(w, "POSITION\tPATH"); err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", entry.Position, entry.Path); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	default:
		return fmt.Errorf("invalid value for --format: %q (allowed: %s, %s)", format, formatText, formatJSON)
	}
}
