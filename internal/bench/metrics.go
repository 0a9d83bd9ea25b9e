package bench

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf8"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // boundary match tolerance, in runes
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Phrases        int // phrases evaluated
	ExactMatches   int // phrases split exactly like the reference
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return FromCounts(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// FromCounts derives precision, recall, F1 and the weighted score from raw counts.
func FromCounts(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// Add merges the counts of o into m and recomputes the derived scores.
func (m Metrics) Add(o Metrics, cfg Config) Metrics {
	sum := FromCounts(
		m.TruePositives+o.TruePositives,
		m.FalsePositives+o.FalsePositives,
		m.FalseNegatives+o.FalseNegatives,
		cfg,
	)
	sum.Phrases = m.Phrases + o.Phrases
	sum.ExactMatches = m.ExactMatches + o.ExactMatches
	return sum
}

// Boundaries returns the rune offsets where each word but the last ends,
// as if the words were concatenated.
func Boundaries(words []string) []int {
	if len(words) < 2 {
		return nil
	}
	boundaries := make([]int, 0, len(words)-1)
	offset := 0
	for _, w := range words[:len(words)-1] {
		offset += utf8.RuneCountInString(w)
		boundaries = append(boundaries, offset)
	}
	return boundaries
}

// Splitter is the part of wordninja.Splitter the benchmark needs.
type Splitter interface {
	SplitWords(ctx context.Context, text string) ([]string, error)
}

// EvaluateDocument splits every phrase of doc and scores the result.
func EvaluateDocument(ctx context.Context, s Splitter, doc *Document, cfg Config) (Metrics, error) {
	var total Metrics
	for i, p := range doc.Phrases {
		words, err := s.SplitWords(ctx, p.Input)
		if err != nil {
			return Metrics{}, fmt.Errorf("%s phrase %d: %w", doc.ID, i+1, err)
		}

		m := Evaluate(Boundaries(words), p.Boundaries, cfg)
		m.Phrases = 1
		if slices.Equal(words, p.Words) {
			m.ExactMatches = 1
		}
		total = total.Add(m, cfg)
	}
	return total, nil
}
