package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordlink/adjacency"
	"github.com/katalvlaran/wordlink/lexicon"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	dictionary string
	mode       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "wordlink",
		Short:         "Find word ladders between dictionary words",
		Long:          "wordlink finds a shortest chain of dictionary words from a start word\nto a target word, changing one letter per step.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&g.configPath, "config", "", "YAML config file")
	f.StringVarP(&g.dictionary, "dict", "d", "", "dictionary file, one word per line")
	f.StringVar(&g.mode, "mode", "", "edit model: fixed or variable")
	f.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newFindCmd(g))
	root.AddCommand(newNeighborsCmd(g))
	return root
}

// resolve loads the config file and applies explicitly set global flags on top.
func (g *globalFlags) resolve(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if g.configPath != "" {
		var err error
		if cfg, err = LoadConfig(g.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary = g.dictionary
	}
	if flags.Changed("mode") {
		m, err := adjacency.ParseMode(g.mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = m
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	return cfg, cfg.Validate()
}

// newLogger writes text records at cfg.LogLevel to w.
func newLogger(w io.Writer, cfg Config) *slog.Logger {
	var lvl slog.Level
	// Validate already rejected unparsable levels
	_ = lvl.UnmarshalText([]byte(cfg.LogLevel))
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// loadLexicon reads the configured dictionary and logs what was kept.
func loadLexicon(cfg Config, logger *slog.Logger) (*lexicon.Lexicon, error) {
	lex, stats, err := lexicon.LoadFile(cfg.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", cfg.Dictionary, err)
	}
	logger.Info("dictionary loaded",
		"path", cfg.Dictionary, "words", lex.Len(), "lines", stats.Lines, "skipped", stats.Skipped)
	return lex, nil
}
