// Package cmd implements the subst subcommands.
package cmd

import (
	"io"
	"os"
	"strconv"

	"github.com/ardnew/subst/rewrite"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// loadConfig builds the replacement configuration for one invocation from
// an optional config file and inline -D defines. Inline entries override
// file entries of the same key.
func loadConfig(
	path string,
	defines map[string]string,
) (rewrite.Config, error) {
	cfg := rewrite.Config{}

	if path != "" {
		loaded, err := rewrite.Load(path)
		if err != nil {
			return nil, err
		}

		if loaded != nil {
			cfg = loaded
		}
	}

	for k, v := range defines {
		cfg[k] = parseDefineValue(v)
	}

	return cfg, nil
}

// parseDefineValue attempts to parse a define's value into an appropriate
// type.
func parseDefineValue(s string) any {
	// Try boolean
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}

	// Try integer
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i
	}

	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	// Default to string
	return s
}

// readSource reads the entire source input from a file or stdin.
func readSource(path string) (string, error) {
	if path == stdinSource {
		data, err := io.ReadAll(os.Stdin)

		return string(data), err
	}

	data, err := os.ReadFile(path)

	return string(data), err
}

// writeOutput writes the rewritten source to a file or stdout.
func writeOutput(path, content string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, content)

		return err
	}

	return os.WriteFile(path, []byte(content), 0o644)
}
