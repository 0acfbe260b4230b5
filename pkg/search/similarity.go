package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Default blend of the two similarity signals. Shared vocabulary is weighted over
// literal character overlap. These are tuned constants, not derived values.
const (
	DefaultWordWeight     = 0.7
	DefaultSequenceWeight = 0.3
)

// Scorer blends word-set Jaccard similarity with a character sequence ratio.
type Scorer struct {
	WordWeight     float64
	SequenceWeight float64
}

// DefaultScorer uses DefaultWordWeight and DefaultSequenceWeight.
var DefaultScorer = Scorer{
	WordWeight:     DefaultWordWeight,
	SequenceWeight: DefaultSequenceWeight,
}

// NewScorer returns a Scorer with the given weights. Non-positive weight pairs fall
// back to the defaults.
func NewScorer(wordWeight, sequenceWeight float64) Scorer {
	if wordWeight < 0 || sequenceWeight < 0 || wordWeight+sequenceWeight == 0 {
		return DefaultScorer
	}
	return Scorer{WordWeight: wordWeight, SequenceWeight: sequenceWeight}
}

// Similarity scores a and b with the DefaultScorer.
func Similarity(a, b string) float64 {
	return DefaultScorer.Score(a, b)
}

// Score returns the blended similarity of a and b. Two empty strings score 0.
func (s Scorer) Score(a, b string) float64 {
	if a == "" && b == "" {
		return 0.0
	}
	return s.WordWeight*Jaccard(a, b) + s.SequenceWeight*SequenceRatio(a, b)
}

// Jaccard returns |A∩B| / |A∪B| over the whitespace separated word sets of a and b.
// It is 0 when both sets are empty.
func Jaccard(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// SequenceRatio is the Ratcliff/Obershelp ratio 2*M/T over the characters of a and b,
// where M is the size of the longest matching blocks and T the combined length.
func SequenceRatio(a, b string) float64 {
	// The matcher breaks ties between equal-length blocks by position, so fix the
	// argument order to keep the ratio symmetric.
	if b < a {
		a, b = b, a
	}
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
