// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/plugsh/plugsh/pkg/logger"
)

// DefaultPluginConfigPath is the system-wide plugin configuration file.
const DefaultPluginConfigPath = "/etc/plugsh.plugin"

const pluginKey = "plugin="

// Source streams plugin module paths out of a line-oriented config file.
//
// Recognized lines have the form "plugin=<path>"; the path is the first
// whitespace-delimited token after the key, so trailing junk on a line is
// dropped. Blank lines and lines starting with '#' are skipped. Anything
// else is ignored and diagnosed at debug level.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the config file this source reads.
func (s *Source) Path() string {
	return s.path
}

// Each opens the config file fresh and streams plugin paths in file order,
// one pass, stopping early if visit returns false. A missing or unreadable
// file yields no paths: no config file means no plugins, not an error.
func (s *Source) Each(visit func(path string) bool) error {
	f, err := os.Open(s.path)
	if err != nil {
		logger.DebugCF("config", "plugin config unavailable", map[string]any{
			"path":  s.path,
			"error": err.Error(),
		})
		return nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		path, ok := parsePluginLine(scanner.Text())
		if !ok {
			continue
		}
		if path == "" {
			logger.DebugCF("config", "ignoring config line without a plugin path", map[string]any{
				"path": s.path,
				"line": lineNo,
			})
			continue
		}
		if !visit(path) {
			return nil
		}
	}
	return scanner.Err()
}

// parsePluginLine returns the plugin path on a recognized line. ok is false
// for blanks, comments, and lines whose first token does not carry the
// plugin= key; ok with an empty path means the key had nothing after it.
func parsePluginLine(line string) (path string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	fields := strings.Fields(trimmed)
	if !strings.HasPrefix(fields[0], pluginKey) {
		logger.DebugCF("config", "ignoring unrecognized config line", map[string]any{
			"token": fields[0],
		})
		return "", false
	}

	if rest := fields[0][len(pluginKey):]; rest != "" {
		return rest, true
	}
	// "plugin=" followed by whitespace: the path is the next token.
	if len(fields) > 1 {
		return fields[1], true
	}
	return "", true
}
