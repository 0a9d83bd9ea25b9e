// Package lexicon implements the rank-based word cost model and the
// minimum-cost word splitter built on top of it.
package lexicon

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/samber/lo"
)

// MaxWords is the maximum number of distinct words a Model may hold.
const MaxWords = 600000

var (
	// ErrEmpty indicates that no words survived deduplication.
	ErrEmpty = errors.New("lexicon: empty dictionary")

	// ErrTooLarge indicates that the distinct word count exceeds MaxWords.
	ErrTooLarge = errors.New("lexicon: dictionary too large")
)

// Model maps dictionary words to their costs. A Model is immutable after New
// returns and is safe for concurrent use.
type Model struct {
	costs      map[string]float64
	maxWordLen int // in runes
}

// New builds a Model from words ordered from most to least frequent.
//
// Duplicates collapse onto their first occurrence. The word at 1-based rank r
// out of N distinct words costs ln(r * ln N); for N < 3 the normalizer is
// clamped to 1 so every cost stays finite and non-negative.
func New(words []string) (*Model, error) {
	distinct := lo.Uniq(lo.Compact(words))
	if len(distinct) == 0 {
		return nil, ErrEmpty
	}
	if len(distinct) > MaxWords {
		return nil, fmt.Errorf("%w: %d distinct words, limit %d", ErrTooLarge, len(distinct), MaxWords)
	}

	norm := math.Max(math.Log(float64(len(distinct))), 1)
	costs := make(map[string]float64, len(distinct))
	for idx, w := range distinct {
		costs[w] = math.Log(float64(idx+1) * norm)
	}

	maxWordLen := lo.Max(lo.Map(distinct, func(w string, _ int) int {
		return utf8.RuneCountInString(w)
	}))

	return &Model{
		costs:      costs,
		maxWordLen: maxWordLen,
	}, nil
}

// Cost returns the cost of word and whether it is in the dictionary.
// Lookups are exact; callers lowercase beforehand.
func (m *Model) Cost(word string) (float64, bool) {
	c, ok := m.costs[word]
	return c, ok
}

// MaxWordLen returns the rune length of the longest dictionary word.
func (m *Model) MaxWordLen() int { return m.maxWordLen }

// Len returns the number of distinct words.
func (m *Model) Len() int { return len(m.costs) }
