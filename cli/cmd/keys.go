package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/subst/log"
	"github.com/ardnew/subst/rewrite"
)

// Keys prints the flattened candidate keys of a replacement config in
// ranked, most-specific-first order.
type Keys struct {
	Config string `arg:"" help:"Replacement config file (YAML or JSON)" type:"existingfile"`
	Find   string `       help:"Fuzzy-filter the listed keys"           short:"f" optional:""`
}

// Run executes the keys command.
func (k *Keys) Run(ctx context.Context, logger log.Logger) error {
	cfg, err := rewrite.Load(k.Config)
	if err != nil {
		return err
	}

	keys := rewrite.Keys(cfg)

	logger.DebugContext(
		ctx,
		"config flattened",
		slog.String("path", k.Config),
		slog.Int("keys", len(keys)),
	)

	if k.Find != "" {
		for _, m := range fuzzy.Find(k.Find, keys) {
			fmt.Println(m.Str)
		}

		return nil
	}

	for _, key := range keys {
		fmt.Println(key)
	}

	return nil
}
