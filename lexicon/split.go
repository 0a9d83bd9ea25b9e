package lexicon

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

// Match is the best final word ending at some prefix position.
type Match struct {
	Cost float64 // total cost of the prefix when it ends with this word
	Len  int     // word length in runes
}

// BestMatch finds the cheapest last word for the prefix text[:i], given the
// prefix costs cost[0:i]. Candidate lengths run from 1 to
// min(i, MaxWordLen()); a substring missing from the dictionary costs +Inf.
// On exactly equal totals the shorter candidate wins, so a run of unknown
// runes always falls back to single-rune words.
func (m *Model) BestMatch(i int, cost []float64, text []rune) Match {
	maxLen := m.maxWordLen
	if maxLen > i {
		maxLen = i
	}

	best := Match{Cost: math.Inf(1), Len: 1}
	for k := 1; k <= maxLen; k++ {
		wordCost, ok := m.costs[string(text[i-k:i])]
		if !ok {
			wordCost = math.Inf(1)
		}

		candidate := cost[i-k] + wordCost
		if k == 1 || candidate < best.Cost {
			best = Match{Cost: candidate, Len: k}
		}
	}
	return best
}

// Split returns the minimum-cost split of text. text must already be cleaned
// (see Clean); an empty text yields nil.
func (m *Model) Split(text string) []string {
	return m.SplitBuffer(text, nil)
}

// SplitBuffer is Split with a caller-owned buffer for the prefix costs.
// buf is used when it holds at least len(runes)+1 values and is otherwise
// ignored.
func (m *Model) SplitBuffer(text string, buf []float64) []string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	// cost[i] = minimum total cost to split runes[0:i]
	var cost []float64
	if cap(buf) >= n+1 {
		cost = buf[:n+1]
	} else {
		cost = make([]float64, n+1)
	}
	cost[0] = 0

	for i := 1; i <= n; i++ {
		cost[i] = m.BestMatch(i, cost, runes).Cost
	}

	// Backtrack from the end; the merger sees words right to left.
	var mg merger
	for j := n; j > 0; {
		k := m.BestMatch(j, cost, runes).Len
		mg.push(string(runes[j-k : j]))
		j -= k
	}

	return lo.Reverse(mg.tokens)
}

// Join splits text and joins the words with single spaces.
func (m *Model) Join(text string) string {
	return strings.Join(m.Split(text), " ")
}
