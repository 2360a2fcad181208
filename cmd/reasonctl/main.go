package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/kailas-cloud/reasoner/internal/version"
	"github.com/kailas-cloud/reasoner/pkg/reasoner"
)

// demoQueries are the sample queries run by the demo command.
var demoQueries = []string{
	"neural networks and deep learning",
	"machine learning",
	"cloud computing resources",
	"what is quantum computing",
	"blockchain",
}

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "reasonctl",
		Usage:   "Ask the hybrid retrieval engine questions from the command line",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "corpus",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML corpus file (default: built-in corpus)",
				EnvVars: []string{"CORPUS_PATH"},
			},
			&cli.IntFlag{
				Name:    "top-k",
				Aliases: []string{"k"},
				Usage:   "Number of hits each ranker returns",
				Value:   3,
			},
			&cli.Float64Flag{
				Name:  "threshold",
				Usage: "Confidence threshold below which the fallback runs",
				Value: 0.75,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single query and print the result as JSON",
				ArgsUsage: "<query...>",
				Action:    askCommand,
			},
			{
				Name:   "demo",
				Usage:  "Run the sample queries and print a summary of each",
				Action: demoCommand,
			},
			{
				Name:   "vocab",
				Usage:  "Print the corpus vocabulary",
				Action: vocabCommand,
			},
		},
	}
}

func askCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	res := engine.Reason(context.Background(), query)

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func demoCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	results, err := engine.ReasonBatch(context.Background(), demoQueries)
	if err != nil {
		return fmt.Errorf("run demo: %w", err)
	}

	w := c.App.Writer
	for i, r := range results {
		if !r.OK() {
			fmt.Fprintf(w, "Query: %s\n  error: %v\n\n", demoQueries[i], r.Err)
			continue
		}
		res := r.Result
		fmt.Fprintf(w, "Query: %s\n", demoQueries[i])
		fmt.Fprintf(w, "  decision:  %s\n", res.Decision)
		fmt.Fprintf(w, "  fallback:  %t\n", res.UsedFallback)
		fmt.Fprintf(w, "  best:      %s (%.2f)\n", res.BestMatch.Text, res.BestMatch.Score)
		fmt.Fprintf(w, "  reasoning: %s\n\n", strings.TrimSpace(res.Trace.Reasoning))
	}
	return nil
}

func vocabCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	terms := engine.Vocabulary()
	fmt.Fprintf(c.App.Writer, "%d terms\n", len(terms))
	for i, t := range terms {
		fmt.Fprintf(c.App.Writer, "%4d  %s\n", i, t)
	}
	return nil
}

func newEngine(c *cli.Context) (*reasoner.Engine, error) {
	opts := []reasoner.Option{
		reasoner.WithTopK(c.Int("top-k")),
		reasoner.WithConfidenceThreshold(c.Float64("threshold")),
		reasoner.WithLogger(slog.Default()),
	}
	if path := c.String("corpus"); path != "" {
		opts = append(opts, reasoner.WithCorpusFile(path))
	}

	engine, err := reasoner.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return engine, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
