package bench

import (
	"context"
	"sort"

	"github.com/samber/lo"

	wordninja "github.com/jamesainslie/go-wordninja"
)

// SweepResult holds metrics for one dictionary size.
type SweepResult struct {
	Size    int // distinct words kept
	Metrics Metrics
}

// SweepSizes generates dictionary sizes from min to max (inclusive) with given step.
func SweepSizes(min, max, step int) []int {
	if step <= 0 {
		return nil
	}
	var sizes []int
	for n := min; n <= max; n += step {
		sizes = append(sizes, n)
	}
	return sizes
}

// Sweep evaluates the ranked word list truncated to each size and returns
// results sorted by weighted score, best first. Sizes beyond the number of
// distinct words are clamped.
func Sweep(ctx context.Context, docs []*Document, words []string, cfg Config, sizes []int) ([]SweepResult, error) {
	distinct := lo.Uniq(lo.Compact(words))
	var results []SweepResult

	for _, size := range sizes {
		if size > len(distinct) {
			size = len(distinct)
		}

		s, err := wordninja.NewFromWords(distinct[:size])
		if err != nil {
			return nil, err
		}

		var agg Metrics
		for _, doc := range docs {
			m, err := EvaluateDocument(ctx, s, doc, cfg)
			if err != nil {
				_ = s.Close()
				return nil, err
			}
			agg = agg.Add(m, cfg)
		}

		_ = s.Close()

		results = append(results, SweepResult{
			Size:    size,
			Metrics: agg,
		})
	}

	// Sort by weighted score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
