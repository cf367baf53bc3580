package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordlink/ladder"
	"github.com/katalvlaran/wordlink/metrics"
)

type findFlags struct {
	noPrune       bool
	shuffle       bool
	seed          int64
	maxDepth      int
	maxExpansions int
	timeout       time.Duration
	stats         bool
}

func newFindCmd(g *globalFlags) *cobra.Command {
	ff := &findFlags{}
	cmd := &cobra.Command{
		Use:   "find <start> <target>",
		Short: "Print a shortest ladder from start to target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, g, ff, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.BoolVar(&ff.noPrune, "no-prune", false, "do not suppress walks that reach an already queued word")
	f.BoolVar(&ff.shuffle, "shuffle", false, "explore neighbors in seeded random order")
	f.Int64Var(&ff.seed, "seed", 0, "shuffle seed; a non-zero seed turns shuffling on")
	f.IntVar(&ff.maxDepth, "max-depth", 0, "longest ladder to consider, in steps (0 = no limit)")
	f.IntVar(&ff.maxExpansions, "max-expansions", 0, "walks to expand before giving up (0 = no limit)")
	f.DurationVar(&ff.timeout, "timeout", 0, "search deadline, e.g. 5s (0 = none)")
	f.BoolVar(&ff.stats, "stats", false, "print search metrics after the ladder")
	return cmd
}

// apply overlays explicitly set find flags on cfg.
func (ff *findFlags) apply(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()
	if flags.Changed("no-prune") {
		cfg.Prune = !ff.noPrune
	}
	if flags.Changed("shuffle") {
		cfg.Shuffle = ff.shuffle
	}
	if flags.Changed("seed") {
		cfg.Seed = ff.seed
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = ff.maxDepth
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = ff.maxExpansions
	}
	if flags.Changed("timeout") {
		cfg.Timeout = ff.timeout
	}
	return cfg.Validate()
}

func runFind(cmd *cobra.Command, g *globalFlags, ff *findFlags, start, target string) error {
	cfg, err := g.resolve(cmd)
	if err != nil {
		return err
	}
	if err := ff.apply(cmd, &cfg); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	lex, err := loadLexicon(cfg, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []ladder.Option{
		ladder.WithMode(cfg.Mode),
		ladder.WithPruning(cfg.Prune),
		ladder.WithMaxDepth(cfg.MaxDepth),
		ladder.WithMaxExpansions(cfg.MaxExpansions),
		ladder.WithLogger(logger),
		ladder.WithMetrics(metrics.New(reg)),
	}
	if cfg.Shuffled() {
		opts = append(opts, ladder.WithSeed(cfg.Seed))
	}
	logger.Info("search configured",
		"mode", cfg.Mode.String(),
		"prune", cfg.Prune,
		"shuffle", cfg.Shuffled(),
		"seed", cfg.Seed,
	)
	finder, err := ladder.New(lex, opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start, target = strings.ToLower(start), strings.ToLower(target)
	res, findErr := finder.FindContext(ctx, start, target)

	out := cmd.OutOrStdout()
	if findErr == nil {
		fmt.Fprintln(out, strings.Join(res.Path, " -> "))
		fmt.Fprintf(out, "%d steps, %d walks expanded\n", res.Len(), res.Expanded)
	} else {
		fmt.Fprintf(out, "no path from %q to %q\n", start, target)
	}

	if ff.stats {
		if err := writeMetrics(cmd, reg); err != nil {
			return err
		}
	}
	return findErr
}

// writeMetrics dumps reg in the Prometheus text exposition format.
func writeMetrics(cmd *cobra.Command, reg *prometheus.Registry) error {
	fams, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range fams {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
