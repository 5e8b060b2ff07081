package cmd

import (
	"context"

	"github.com/ardnew/subst/cli/cmd/repl"
	"github.com/ardnew/subst/log"
)

// Repl starts an interactive loop that rewrites one expression or import
// declaration per line against a fixed replacement config.
type Repl struct {
	Config string            `help:"Replacement config file (YAML or JSON)" short:"c" type:"existingfile" optional:""`
	Define map[string]string `help:"Inline replacement entries (key=value)" short:"D" optional:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, logger log.Logger) error {
	cfg, err := loadConfig(r.Config, r.Define)
	if err != nil {
		return err
	}

	return repl.Run(ctx, cfg, logger)
}
