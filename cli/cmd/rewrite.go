package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/subst/log"
	"github.com/ardnew/subst/rewrite"
	"github.com/ardnew/subst/tree"
)

// Rewrite substitutes configured replacement values into a source file.
type Rewrite struct {
	Config string            `help:"Replacement config file (YAML or JSON)" short:"c" type:"existingfile" optional:""`
	Define map[string]string `help:"Inline replacement entries (key=value)" short:"D" optional:""`
	Output string            `help:"Output file (default stdout)"           short:"o" optional:""`

	Source string `arg:"" help:"Source input file or '-' for stdin" default:"-" optional:""`
}

// Run executes the rewrite command.
func (r *Rewrite) Run(ctx context.Context, logger log.Logger) error {
	cfg, err := loadConfig(r.Config, r.Define)
	if err != nil {
		return err
	}

	input, err := readSource(r.Source)
	if err != nil {
		return rewrite.WrapError(err).
			With(slog.String("source", r.Source))
	}

	file, err := tree.Parse(input)
	if err != nil {
		return rewrite.WrapError(err).
			With(slog.String("source", r.Source))
	}

	engine := rewrite.New(rewrite.WithLogger(logger))
	count := engine.File(file, cfg)

	logger.InfoContext(
		ctx,
		"rewrite complete",
		slog.String("source", r.Source),
		slog.Int("substitutions", count),
	)

	return writeOutput(r.Output, tree.Format(file))
}
