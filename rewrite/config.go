package rewrite

import (
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is a replacement configuration: a nested mapping from symbolic
// path keys to the literal values substituted for them. The engine treats
// it as read-only; callers must not mutate it during matching.
type Config map[string]any

// Load reads a replacement configuration from a YAML (or JSON) file.
// A missing or malformed file is a fatal condition for the caller: the
// returned error identifies the offending path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrLoadConfig.Wrap(err).
			With(slog.String("path", path))
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, ErrLoadConfig.Wrap(err).
			With(slog.String("path", path))
	}

	return cfg, nil
}
