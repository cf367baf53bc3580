package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordlink/ladder"
)

func newNeighborsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List dictionary words one edit away from word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			lex, err := loadLexicon(cfg, logger)
			if err != nil {
				return err
			}
			finder, err := ladder.New(lex, ladder.WithMode(cfg.Mode), ladder.WithLogger(logger))
			if err != nil {
				return err
			}

			word := strings.ToLower(args[0])
			if !lex.Contains(word) {
				logger.Warn("word is not in the dictionary", "word", word)
			}
			out := cmd.OutOrStdout()
			for _, n := range finder.Neighbors(word) {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}
