package intents

import (
	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/search"
)

// DefaultMatchThreshold is the similarity a pattern must exceed to be considered at
// all. It is deliberately lower than the resolver's acceptance threshold.
const DefaultMatchThreshold = 0.4

// Matcher finds the corpus pattern most similar to a question.
type Matcher struct {
	Threshold float64
	Scorer    search.Scorer
}

// NewMatcher returns a Matcher with the default threshold and scorer.
func NewMatcher() *Matcher {
	return &Matcher{
		Threshold: DefaultMatchThreshold,
		Scorer:    search.DefaultScorer,
	}
}

// FindBestMatch scans corpus with the default Matcher.
func FindBestMatch(question string, corpus *models.Corpus) *models.MatchCandidate {
	return NewMatcher().FindBestMatch(question, corpus)
}

// FindBestMatch scans every pattern of every intent, in corpus order, and returns
// the one scoring highest above the threshold, or nil if none does. Ties keep the
// earliest pattern.
//
// This is a full scan per call: O(total patterns).
func (m *Matcher) FindBestMatch(question string, corpus *models.Corpus) *models.MatchCandidate {
	if corpus == nil {
		return nil
	}

	question = search.Normalize(question)

	var best *models.MatchCandidate
	bestScore := m.Threshold

	for i := range corpus.Intents {
		intent := &corpus.Intents[i]
		for _, pattern := range intent.Patterns {
			score := m.Scorer.Score(question, search.Normalize(pattern))
			if score > bestScore {
				bestScore = score
				best = &models.MatchCandidate{
					Answer:         intent.Responses[0],
					Confidence:     score,
					Source:         models.SourceIntents,
					MatchedPattern: pattern,
				}
			}
		}
	}

	return best
}
