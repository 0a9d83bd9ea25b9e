package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	wordninja "github.com/jamesainslie/go-wordninja"
	"github.com/jamesainslie/go-wordninja/dictionary"
	"github.com/jamesainslie/go-wordninja/internal/bench"
)

func main() {
	var (
		dictPath  = flag.String("dict", "", "Path to dictionary file (default: bundled English list)")
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory containing reference phrase files")
		tolerance = flag.Int("tolerance", 0, "Rune tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
		sweep     = flag.Bool("sweep", false, "Run dictionary size sweep")
		sweepMin  = flag.Int("sweep-min", 100, "Sweep minimum dictionary size")
		sweepMax  = flag.Int("sweep-max", 1000, "Sweep maximum dictionary size")
		sweepStep = flag.Int("sweep-step", 100, "Sweep step size")
		dicts     = flag.String("dicts", "", "Comma-separated dictionary paths for comparison (\"bundled\" for the embedded list)")
	)
	flag.Parse()

	// Load corpus
	docs, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	ctx := context.Background()

	switch {
	case *dicts != "":
		runComparison(ctx, strings.Split(*dicts, ","), docs, cfg)
	case *sweep:
		runSweep(ctx, *dictPath, docs, cfg, *sweepMin, *sweepMax, *sweepStep)
	default:
		runSingle(ctx, *dictPath, docs, cfg)
	}
}

func runSingle(ctx context.Context, dictPath string, docs []*bench.Document, cfg bench.Config) {
	s, err := wordninja.New(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating splitter: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = s.Close() }()

	m, err := evaluate(ctx, s, docs, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	printMetrics(m)
}

func runSweep(ctx context.Context, dictPath string, docs []*bench.Document, cfg bench.Config, min, max, step int) {
	words, err := loadWords(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading dictionary: %v\n", err)
		os.Exit(1)
	}
	sizes := bench.SweepSizes(min, max, step)

	fmt.Printf("Dictionary Size Sweep (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s\n", "Size", "Prec", "Rec", "F1", "Exact")

	results, err := bench.Sweep(ctx, docs, words, cfg, sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	// Print sorted by size for readability
	for _, n := range sizes {
		for _, r := range results {
			if r.Size == n {
				fmt.Printf("%-8d %-8.2f %-8.2f %-8.2f %-8.2f\n",
					r.Size, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, exactRate(r.Metrics))
				break
			}
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: %d words (Weighted: %.2f)\n", best.Size, best.Metrics.WeightedScore)
	}
}

func runComparison(ctx context.Context, paths []string, docs []*bench.Document, cfg bench.Config) {
	fmt.Printf("Dictionary Comparison (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-30s %-8s %-8s %-8s\n", "Dictionary", "Words", "F1", "Weighted")

	for _, path := range paths {
		path = strings.TrimSpace(path)
		dictPath := path
		if path == "bundled" {
			dictPath = ""
		}
		s, err := wordninja.New(dictPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error with %s: %v\n", path, err)
			continue
		}
		m, err := evaluate(ctx, s, docs, cfg)
		words := s.Stats().Words
		_ = s.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error with %s: %v\n", path, err)
			continue
		}

		fmt.Printf("%-30s %-8d %-8.2f %-8.2f\n", path, words, m.F1, m.WeightedScore)
	}
}

func evaluate(ctx context.Context, s *wordninja.Splitter, docs []*bench.Document, cfg bench.Config) (bench.Metrics, error) {
	var total bench.Metrics
	for _, doc := range docs {
		m, err := bench.EvaluateDocument(ctx, s, doc, cfg)
		if err != nil {
			return bench.Metrics{}, fmt.Errorf("evaluating %s: %w", doc.ID, err)
		}
		total = total.Add(m, cfg)
	}
	return total, nil
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		list, err := dictionary.Default()
		if err != nil {
			return nil, err
		}
		return list.Words, nil
	}
	list, err := dictionary.Load(path)
	if err != nil {
		return nil, err
	}
	return list.Words, nil
}

func exactRate(m bench.Metrics) float64 {
	if m.Phrases == 0 {
		return 0
	}
	return float64(m.ExactMatches) / float64(m.Phrases)
}

func printMetrics(m bench.Metrics) {
	fmt.Printf("Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Printf("Exact phrases: %d/%d (%.2f)\n", m.ExactMatches, m.Phrases, exactRate(m))
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}
