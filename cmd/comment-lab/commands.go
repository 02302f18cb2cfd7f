package main

import (
	"comment-lab/embedding"
	"comment-lab/ingestion"
	"comment-lab/internal"
	"comment-lab/observability"
	"comment-lab/pipeline"
	"comment-lab/presenter"
	"comment-lab/redaction"
	"comment-lab/services"
	"fmt"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

var errConfig = fmt.Errorf("invalid configuration")

func newRootCommand(config *internal.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "comment-lab",
		Short:         "Cluster customer comments and report the Good and Bad groups",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return fmt.Errorf("%w: %w", errConfig, err)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "DEBUG, INFO, WARN or ERROR")
	flags.StringVar(&config.BadgerFilepath, "badger", config.BadgerFilepath, "report archive directory, empty disables it")
	flags.StringVar(&config.BlugeFilepath, "bluge", config.BlugeFilepath, "comment index directory, empty disables it")

	root.AddCommand(
		newAnalyzeCommand(config),
		newHistoryCommand(config),
		newSearchCommand(config),
	)
	return root
}

func newAnalyzeCommand(config *internal.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Run the clustering pipeline on a CSV file with a comment_text column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.InputFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("%w: no input file, pass one or set INPUT_FILE", errConfig)
			}
			maskChar, err := internal.CharacterRune(config.RedactionCharacter)
			if err != nil {
				return fmt.Errorf("%w: %w", errConfig, err)
			}

			log := logs.GetLoggerFromString(config.LogLevel)
			store, err := openStorage(*config, log)
			if err != nil {
				return err
			}
			defer store.Close()

			masker, err := redaction.NewMasker(internal.SplitList(config.RedactedWords), maskChar, log)
			if err != nil {
				return err
			}

			runner, err := pipeline.NewDefault(log, settingsFrom(*config))
			if err != nil {
				return fmt.Errorf("%w: %w", errConfig, err)
			}

			var stats observability.Snapshots
			if processStats, err := observability.NewProcessStats(); err != nil {
				log.Warn("Process stats unavailable", "err", err)
			} else {
				stats = processStats
			}

			service := services.NewAnalysisService(
				log,
				ingestion.NewCSVReader(log),
				runner,
				store.reports,
				store.index,
				stats,
			)
			outcome, err := service.Analyze(cmd.Context(), services.AnalyzeRequest{Path: path})
			if err != nil {
				return err
			}

			log.Info("Run recorded", "run_id", outcome.Run.ID, "language", outcome.Run.Language)
			return presenter.New(cmd.OutOrStdout(), config.Colours, masker).Render(outcome.Run.Report)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Embedder, "embedder", config.Embedder, "skipgram or hashing")
	flags.IntVar(&config.VectorSize, "vector-size", config.VectorSize, "word vector dimension")
	flags.IntVar(&config.MinCount, "min-count", config.MinCount, "minimum corpus frequency for a word to get a vector")
	flags.IntVar(&config.Window, "window", config.Window, "skip-gram context window")
	flags.IntVar(&config.Epochs, "epochs", config.Epochs, "training passes over the corpus")
	flags.IntVarP(&config.ClusterCount, "clusters", "k", config.ClusterCount, "number of k-means clusters")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "seed shared by training and clustering")
	flags.IntVar(&config.MaxIterations, "max-iterations", config.MaxIterations, "k-means iteration cap")
	flags.StringVar(&config.StopWordsExtra, "stop-words", config.StopWordsExtra, "comma separated words added to the stop list")
	flags.StringVar(&config.RedactedWords, "redact", config.RedactedWords, "comma separated words masked in the table")
	flags.BoolVar(&config.Colours, "colours", config.Colours, "colour the bar chart")
	return cmd
}

func newHistoryCommand(config *internal.Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the archived runs, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logs.GetLoggerFromString(config.LogLevel)
			store, err := openStorage(*config, log)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.service().History(limit)
			if err != nil {
				return err
			}
			renderHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs, 0 for all")
	return cmd
}

func newSearchCommand(config *internal.Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over every indexed comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("%w: --limit must be positive, got %d", errConfig, limit)
			}
			log := logs.GetLoggerFromString(config.LogLevel)
			store, err := openStorage(*config, log)
			if err != nil {
				return err
			}
			defer store.Close()

			hits, err := store.service().Search(args[0], limit)
			if err != nil {
				return err
			}
			renderHits(cmd.OutOrStdout(), hits)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of hits, must be positive")
	return cmd
}

func settingsFrom(c internal.Config) pipeline.Settings {
	return pipeline.Settings{
		Embedder: c.Embedder,
		Embedding: embedding.Params{
			VectorSize:   c.VectorSize,
			MinCount:     c.MinCount,
			Window:       c.Window,
			Negative:     c.Negative,
			Epochs:       c.Epochs,
			LearningRate: c.LearningRate,
			Seed:         c.Seed,
			Workers:      c.Workers,
		},
		ClusterCount:  c.ClusterCount,
		MaxIterations: c.MaxIterations,
		ExtraStopWord: internal.SplitList(c.StopWordsExtra),
	}
}

// service builds a read-only service for history and search, no reader nor pipeline needed.
func (s *storage) service() *services.AnalysisService {
	return services.NewAnalysisService(s.log, nil, nil, s.reports, s.index, nil)
}
