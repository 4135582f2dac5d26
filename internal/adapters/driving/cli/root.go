// Package cli wires the cobra command tree that drives the resolver:
// one-shot questions, the interactive chat TUI, the Discord bot, the
// MCP server, and knowledge-file maintenance.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	proseanalyzer "github.com/hearthlabs/parley/internal/adapters/driven/analyzer/prose"
	configfile "github.com/hearthlabs/parley/internal/adapters/driven/config/file"
	knowledgefile "github.com/hearthlabs/parley/internal/adapters/driven/knowledge/file"
	"github.com/hearthlabs/parley/internal/adapters/driven/similarity/fuzzywuzzy"
	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/services"
	"github.com/hearthlabs/parley/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

var (
	configDir   string
	kbPathFlag  string
	verboseFlag bool

	configStore *configfile.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "A knowledge-base chatbot that resolves utterances to intents",
	Long: `Parley resolves free-form utterances against a knowledge base of
patterns and question phrasings, falling back to linguistic heuristics
when nothing matches. It runs as a one-shot CLI, an interactive chat
TUI, a Discord bot, or an MCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		store, err := configfile.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		configStore = store
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.parley)")
	rootCmd.PersistentFlags().StringVar(&kbPathFlag, "kb", "", "knowledge file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// knowledgePath resolves the knowledge file path: flag first, then
// config, then knowledge.txt next to the config file.
func knowledgePath() string {
	if kbPathFlag != "" {
		return kbPathFlag
	}
	if path := configStore.GetString(configfile.KeyKnowledgePath); path != "" {
		return path
	}
	return filepath.Join(filepath.Dir(configStore.Path()), "knowledge.txt")
}

// resolverOptions builds pipeline options from config.
func resolverOptions() services.Options {
	opts := services.DefaultOptions()

	if threshold := configStore.GetInt(configfile.KeyThreshold); threshold > 0 {
		opts.Threshold = threshold
	}
	if name := configStore.GetString(configfile.KeyFallbackPolicy); name != "" {
		policy, err := domain.ParseFallbackPolicy(name)
		if err != nil {
			logger.Warn("config: %v, using %q", err, opts.FallbackPolicy)
		} else {
			opts.FallbackPolicy = policy
		}
	}
	if val, ok := configStore.Get(configfile.KeyLooseCommandRule); ok {
		if enabled, isBool := val.(bool); isBool {
			opts.LooseCommandRule = enabled
		}
	}

	return opts
}

// buildResolver assembles the resolution pipeline: knowledge source,
// analyzer, scorer, resolver. The returned cleanup releases the
// analyzer.
func buildResolver(cmd *cobra.Command) (*services.ResolverService, *knowledgefile.Source, func(), error) {
	source := knowledgefile.New(knowledgePath())
	kb, err := source.Load(cmd.Context())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	logger.Info("knowledge base loaded: %d entries from %s", kb.Len(), source.Path())

	analyzer := proseanalyzer.NewAnalyzer()
	scorer := fuzzywuzzy.NewScorer()

	resolver, err := services.NewResolverService(kb, analyzer, scorer, resolverOptions())
	if err != nil {
		analyzer.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := analyzer.Close(); err != nil {
			logger.Warn("closing analyzer: %v", err)
		}
	}
	return resolver, source, cleanup, nil
}
